package input

import "go.uber.org/zap"

const (
	defaultPrompt = "> "
	defaultWidth  = 20
)

type (
	Option  func(*options)
	options struct {
		kind      InputKind
		hint      string
		enabled   bool
		prompt    string
		width     int
		charLimit int
		keys      KeyMap
		logger    *zap.Logger
	}
)

func defaultOptions() options {
	return options{
		kind:    KindText,
		enabled: true,
		prompt:  defaultPrompt,
		width:   defaultWidth,
		keys:    DefaultKeyMap,
		logger:  zap.NewNop(),
	}
}

func WithInputKind(kind InputKind) Option {
	return func(o *options) { o.kind = kind }
}

// WithHint sets the placeholder shown while the field is empty.
func WithHint(hint string) Option {
	return func(o *options) { o.hint = hint }
}

// WithEnabled decides once whether the field accepts input. A disabled field
// never shows the clear button.
func WithEnabled(enabled bool) Option {
	return func(o *options) { o.enabled = enabled }
}

func WithPrompt(prompt string) Option {
	return func(o *options) { o.prompt = prompt }
}

// WithWidth sets the number of visible text cells. Non-positive values are ignored.
func WithWidth(width int) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
	}
}

// WithCharLimit caps the content length in runes. Zero means no limit.
func WithCharLimit(limit int) Option {
	return func(o *options) {
		if limit >= 0 {
			o.charLimit = limit
		}
	}
}

func WithKeyMap(keys KeyMap) Option {
	return func(o *options) { o.keys = keys }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
