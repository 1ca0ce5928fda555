package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dlomanov/clearable/internal/apps/demo/config"
	"github.com/dlomanov/clearable/internal/ui/input"
	"github.com/dlomanov/clearable/internal/ui/styles"
	"go.uber.org/zap"
)

// Screen cells of the fields, matching the layout produced by View.
const (
	marginLeft = 2
	searchRow  = 3
	tagRow     = 4
	limitRow   = 5
)

type Model struct {
	tea.Model
	title      string
	logger     *zap.Logger
	search     *input.Clearable
	tag        *input.Clearable
	limit      *input.Clearable
	inputs     []*input.Clearable
	focusIndex int
	words      []string
	matches    []string
	suggestion string
	clears     int
	status     string
	quitting   bool
}

func NewModel(
	title string,
	c *config.Config,
	logger *zap.Logger,
) (Model, error) {
	search, err := input.NewFromAttrs(c.SearchAttrs(),
		input.WithPrompt("search › "),
		input.WithWidth(c.Width),
		input.WithCharLimit(c.CharLimit),
		input.WithLogger(logger),
	)
	if err != nil {
		return Model{}, fmt.Errorf("search input: %w", err)
	}
	search.SetOnClear(func(e input.ClearEvent) {
		logger.Debug("search cleared", zap.String("source", fmt.Sprintf("%T", e.Source)))
	})

	tag := input.New(
		input.WithPrompt("tag    › "),
		input.WithHint("click to pick"),
		input.WithWidth(c.Width),
		input.WithLogger(logger),
	)
	tags := &tagCycle{tags: defaultTags}
	tag.SetOnClick(func(input.ClickEvent) {
		tag.SetValue(tags.Next())
	})

	limit := input.New(
		input.WithPrompt("limit  › "),
		input.WithHint(fmt.Sprintf("%d", defaultLimit)),
		input.WithInputKind(input.KindNumber),
		input.WithWidth(c.Width),
		input.WithCharLimit(3),
		input.WithLogger(logger),
	)

	search.SetPosition(marginLeft, searchRow)
	tag.SetPosition(marginLeft, tagRow)
	limit.SetPosition(marginLeft, limitRow)

	m := Model{
		title:  title,
		logger: logger,
		search: search,
		tag:    tag,
		limit:  limit,
		inputs: []*input.Clearable{search, tag, limit},
		words:  defaultWords,
	}
	m.focusIndex = m.firstFocusable()
	m.refresh()
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return m.focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab", "shift+tab", "up", "down":
			m.cycleFocus(msg.String() == "shift+tab" || msg.String() == "up")
			return m, m.focus()
		}
	case input.ClearedMsg:
		m.clears++
		m.status = fmt.Sprintf("cleared %d time(s)", m.clears)
		m.logger.Debug("input cleared", zap.String("id", msg.ID), zap.Int("clears", m.clears))
		m.refresh()
		return m, nil
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i, in := range m.inputs {
		cmds[i] = in.Update(msg)
	}
	if _, ok := msg.(tea.MouseMsg); ok {
		m.syncFocusIndex()
	}
	m.refresh()
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	sb := strings.Builder{}
	sb.WriteByte('\n')
	sb.WriteString(styles.TitleStyle.Render(m.title))
	sb.WriteByte('\n')
	sb.WriteByte('\n')
	for _, in := range m.inputs {
		sb.WriteString(in.View())
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	if tag := m.tag.Value(); tag != "" {
		sb.WriteString(styles.SubtleStyle.Render(tag + ":"))
		sb.WriteByte('\n')
	}
	switch {
	case len(m.matches) == 0 && m.suggestion != "":
		sb.WriteString(styles.SubtleStyle.Render("nothing found, did you mean "))
		sb.WriteString(styles.MatchStyle.Render(m.suggestion))
		sb.WriteString(styles.SubtleStyle.Render("?"))
		sb.WriteByte('\n')
	default:
		for _, w := range m.matches {
			sb.WriteString("  ")
			sb.WriteString(w)
			sb.WriteByte('\n')
		}
	}
	sb.WriteByte('\n')
	sb.WriteString(styles.SubtleStyle.Render("tab: next"))
	sb.WriteString(styles.DotStyle)
	sb.WriteString(styles.SubtleStyle.Render("ctrl+x: clear"))
	sb.WriteString(styles.DotStyle)
	sb.WriteString(styles.SubtleStyle.Render("esc: quit"))
	sb.WriteByte('\n')
	sb.WriteByte('\n')
	if m.quitting {
		sb.WriteString(styles.StatusStyle.Render("bye!"))
	} else {
		sb.WriteString(styles.StatusStyle.Render(m.status))
	}
	sb.WriteByte('\n')
	return styles.MainStyle.Render(sb.String())
}

func (m *Model) refresh() {
	query := m.search.Value()
	matches := filterWords(m.words, query)
	if n := parseLimit(m.limit.Value()); len(matches) > n {
		matches = matches[:n]
	}
	m.matches = matches
	m.suggestion = ""
	if len(matches) == 0 && query != "" {
		m.suggestion = suggest(m.words, query)
	}
}

func (m *Model) cycleFocus(backward bool) {
	for range m.inputs {
		if backward {
			m.focusIndex--
		} else {
			m.focusIndex++
		}
		if m.focusIndex >= len(m.inputs) {
			m.focusIndex = 0
		} else if m.focusIndex < 0 {
			m.focusIndex = len(m.inputs) - 1
		}
		if m.inputs[m.focusIndex].Focusable() {
			return
		}
	}
}

func (m *Model) focus() tea.Cmd {
	var cmd tea.Cmd
	for i, in := range m.inputs {
		if i == m.focusIndex {
			cmd = in.Focus()
			continue
		}
		in.Blur()
	}
	return cmd
}

// syncFocusIndex follows focus moved by a mouse press and blurs the rest.
func (m *Model) syncFocusIndex() {
	for i, in := range m.inputs {
		if in.Focused() && i != m.focusIndex {
			m.inputs[m.focusIndex].Blur()
			m.focusIndex = i
			return
		}
	}
}

func (m *Model) firstFocusable() int {
	for i, in := range m.inputs {
		if in.Focusable() {
			return i
		}
	}
	return 0
}
