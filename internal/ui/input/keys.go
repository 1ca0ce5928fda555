package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings handled by Clearable itself. Everything else is
// passed to the inner textinput.
type KeyMap struct {
	Clear key.Binding
}

var DefaultKeyMap = KeyMap{
	Clear: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
}
