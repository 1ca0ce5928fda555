package input

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownInputKind = errors.New("unknown input kind")

// InputKind selects how the inner field accepts and echoes characters.
type InputKind int

const (
	KindText InputKind = iota
	KindNumber
	KindPassword
)

func (k InputKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindPassword:
		return "password"
	default:
		return fmt.Sprintf("InputKind(%d)", int(k))
	}
}

// ParseInputKind maps an attribute value to an InputKind.
// An empty value means plain text.
func ParseInputKind(s string) (InputKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return KindText, nil
	case "number":
		return KindNumber, nil
	case "password":
		return KindPassword, nil
	default:
		return KindText, fmt.Errorf("%w: %q", ErrUnknownInputKind, s)
	}
}
