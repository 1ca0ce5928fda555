package input

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dlomanov/clearable/internal/ui/styles"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const clearLabel = " ✕"

var _ Input = (*Clearable)(nil)

type (
	// Clearable is a single-line text field with a clear button rendered at its
	// end. The button is shown only while the field is enabled and non-empty.
	Clearable struct {
		id           string
		model        textinput.Model
		kind         InputKind
		hint         string
		enabled      bool
		focusable    bool
		visible      bool
		keys         KeyMap
		logger       *zap.Logger
		onClear      func(ClearEvent)
		onClick      func(ClickEvent)
		x, y         int
		noStyle      lipgloss.Style
		focusedStyle lipgloss.Style
		blurredStyle lipgloss.Style
		buttonStyle  lipgloss.Style
	}
	// ClearEvent is passed to the clear callback. Source is the message that
	// activated the button, or whatever was handed to Clear.
	ClearEvent struct {
		ID     string
		Source tea.Msg
	}
	// ClickEvent is passed to the click handler installed by SetOnClick.
	ClickEvent struct {
		ID     string
		Source tea.MouseMsg
	}
	// ClearedMsg is emitted by the command returned from a clear action.
	ClearedMsg struct {
		ID string
	}
)

func New(opts ...Option) *Clearable {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	model := textinput.New()
	model.Prompt = o.prompt
	model.Placeholder = o.hint
	model.CharLimit = o.charLimit
	model.Width = o.width
	model.Cursor.SetMode(cursor.CursorBlink)
	model.Cursor.Style = styles.CursorStyle
	if o.kind == KindPassword {
		model.EchoMode = textinput.EchoPassword
		model.EchoCharacter = '•'
	}

	c := &Clearable{
		id:           uuid.NewString(),
		model:        model,
		kind:         o.kind,
		hint:         o.hint,
		enabled:      o.enabled,
		focusable:    o.enabled,
		keys:         o.keys,
		logger:       o.logger,
		noStyle:      styles.NoStyle,
		focusedStyle: styles.FocusedStyle,
		blurredStyle: styles.BlurredStyle,
		buttonStyle:  styles.ClearStyle,
	}
	c.Reset()
	return c
}

func (c *Clearable) ID() string {
	return c.id
}

func (c *Clearable) Kind() InputKind {
	return c.kind
}

func (c *Clearable) Hint() string {
	return c.hint
}

func (c *Clearable) Enabled() bool {
	return c.enabled
}

func (c *Clearable) Focusable() bool {
	return c.focusable
}

func (c *Clearable) Focused() bool {
	return c.model.Focused()
}

func (c *Clearable) ButtonVisible() bool {
	return c.visible
}

func (c *Clearable) Value() string {
	return c.model.Value()
}

// SetValue replaces the content the way the inner textinput stores it: tabs
// and newlines become spaces, invalid UTF-8 is dropped and the char limit
// applies. The button follows the stored content.
func (c *Clearable) SetValue(v string) {
	c.model.SetValue(v)
	c.textChanged()
}

// SetPosition tells the field which screen cell its prompt starts at, so mouse
// presses can be matched against the text area and the button.
func (c *Clearable) SetPosition(x, y int) {
	c.x, c.y = x, y
}

// SetOnClick makes the field act as a tap target. The inner field stops taking
// focus and key input, and a left press on the text area calls fn.
func (c *Clearable) SetOnClick(fn func(ClickEvent)) {
	c.focusable = false
	c.Blur()
	c.onClick = fn
}

// SetOnClear registers fn to run after the button has emptied the field.
func (c *Clearable) SetOnClear(fn func(ClearEvent)) {
	c.onClear = fn
}

// Clear empties the field, runs the clear callback and returns a command that
// reports ClearedMsg. It does the same work as pressing a visible button.
func (c *Clearable) Clear(source tea.Msg) tea.Cmd {
	c.SetValue("")
	c.logger.Debug("input cleared", zap.String("id", c.id))
	if c.onClear != nil {
		c.onClear(ClearEvent{ID: c.id, Source: source})
	}
	id := c.id
	return func() tea.Msg {
		return ClearedMsg{ID: id}
	}
}

func (c *Clearable) Focus() tea.Cmd {
	if !c.enabled || !c.focusable {
		c.Blur()
		return nil
	}
	c.model.PromptStyle = c.focusedStyle
	c.model.TextStyle = c.focusedStyle
	return c.model.Focus()
}

func (c *Clearable) Blur() {
	style := c.noStyle
	if !c.enabled {
		style = c.blurredStyle
	}
	c.model.PromptStyle = style
	c.model.TextStyle = style
	c.model.Blur()
}

func (c *Clearable) Reset() {
	c.model.Reset()
	c.textChanged()
	c.Blur()
}

func (c *Clearable) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return c.updateMouseMsg(msg)
	case tea.KeyMsg:
		return c.updateKeyMsg(msg)
	}
	if !c.enabled {
		return nil
	}
	return c.forward(msg)
}

func (c *Clearable) View() string {
	cells := c.fieldCells()
	field := lipgloss.NewStyle().
		Inline(true).
		MaxWidth(cells).
		Render(c.model.View())
	if pad := cells - lipgloss.Width(field); pad > 0 {
		field += strings.Repeat(" ", pad)
	}
	if !c.visible {
		return field + strings.Repeat(" ", c.buttonCells())
	}
	return field + c.buttonStyle.Render(clearLabel)
}

func (c *Clearable) updateKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if !c.enabled || !c.focusable || !c.model.Focused() {
		return nil
	}
	if key.Matches(msg, c.keys.Clear) {
		if !c.visible {
			return nil
		}
		return c.Clear(msg)
	}
	if c.kind == KindNumber {
		var ok bool
		if msg, ok = digitsOnly(msg); !ok {
			return nil
		}
	}
	return c.forward(msg)
}

func (c *Clearable) updateMouseMsg(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || msg.Y != c.y {
		return nil
	}
	col := msg.X - c.x
	field := c.fieldCells()
	switch {
	case col >= field && col < field+c.buttonCells():
		if c.visible {
			return c.Clear(msg)
		}
	case col >= 0 && col < field:
		if !c.enabled {
			return nil
		}
		if c.onClick != nil {
			c.onClick(ClickEvent{ID: c.id, Source: msg})
			return nil
		}
		return c.Focus()
	}
	return nil
}

func (c *Clearable) forward(msg tea.Msg) (cmd tea.Cmd) {
	before := c.model.Value()
	c.model, cmd = c.model.Update(msg)
	if after := c.model.Value(); after != before {
		if c.kind == KindNumber {
			if digits := stripNonDigits(after); digits != after {
				c.model.SetValue(digits)
			}
		}
		c.textChanged()
	}
	return cmd
}

// textChanged is the visibility rule. A disabled field never installs it.
func (c *Clearable) textChanged() {
	if !c.enabled {
		return
	}
	c.visible = len(c.model.Value()) > 0
}

func (c *Clearable) fieldCells() int {
	return lipgloss.Width(c.model.Prompt) + c.model.Width + 1
}

func (c *Clearable) buttonCells() int {
	return lipgloss.Width(clearLabel)
}

func digitsOnly(msg tea.KeyMsg) (tea.KeyMsg, bool) {
	switch {
	case msg.Type == tea.KeySpace:
		return msg, false
	case msg.Type != tea.KeyRunes || msg.Alt:
		return msg, true
	}
	runes := make([]rune, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		if unicode.IsDigit(r) {
			runes = append(runes, r)
		}
	}
	if len(runes) == 0 {
		return msg, false
	}
	msg.Runes = runes
	return msg, true
}

func stripNonDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
