package input

// Attrs are construction attributes as they come from a styling or config
// source. Nil and empty values fall back to the defaults of New.
type Attrs struct {
	InputKind string  `yaml:"input_kind,omitempty"`
	Hint      *string `yaml:"hint,omitempty"`
	Enabled   *bool   `yaml:"enabled,omitempty"`
}

// NewFromAttrs builds a Clearable from attributes. Options passed explicitly
// are applied after the attributes and win over them.
func NewFromAttrs(attrs Attrs, opts ...Option) (*Clearable, error) {
	kind, err := ParseInputKind(attrs.InputKind)
	if err != nil {
		return nil, err
	}
	all := make([]Option, 0, len(opts)+3)
	all = append(all, WithInputKind(kind))
	if attrs.Hint != nil {
		all = append(all, WithHint(*attrs.Hint))
	}
	if attrs.Enabled != nil {
		all = append(all, WithEnabled(*attrs.Enabled))
	}
	all = append(all, opts...)
	return New(all...), nil
}
