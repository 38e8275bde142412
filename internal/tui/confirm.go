package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"specprep/internal/plan"
	"specprep/internal/tui/styles"
)

// ConfirmKeyMap defines the key bindings of the confirm screen
type ConfirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Left   key.Binding
	Right  key.Binding
	Submit key.Binding
}

// DefaultConfirmKeyMap returns the default confirm bindings
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes:    key.NewBinding(key.WithKeys("y", "Y")),
		No:     key.NewBinding(key.WithKeys("n", "N", "esc", "q", "ctrl+c")),
		Left:   key.NewBinding(key.WithKeys("left", "h")),
		Right:  key.NewBinding(key.WithKeys("right", "l")),
		Submit: key.NewBinding(key.WithKeys("enter")),
	}
}

// ConfirmModel asks whether a preparation plan should be executed
type ConfirmModel struct {
	service   string
	target    string
	ops       plan.Plan
	keys      ConfirmKeyMap
	selected  int // 0 = yes, 1 = no
	confirmed bool
	done      bool
}

// NewConfirmModel creates a confirm screen for the plan of service
func NewConfirmModel(service, target string, ops plan.Plan) *ConfirmModel {
	return &ConfirmModel{
		service: service,
		target:  target,
		ops:     ops,
		keys:    DefaultConfirmKeyMap(),
	}
}

// Init initializes the screen
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Confirmed reports whether the user accepted the plan
func (m *ConfirmModel) Confirmed() bool {
	return m.confirmed
}

// Update handles events
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		m.selected = 0
		return m, m.finish(true)
	case key.Matches(keyMsg, m.keys.No):
		return m, m.finish(false)
	case key.Matches(keyMsg, m.keys.Left):
		m.selected = 0
	case key.Matches(keyMsg, m.keys.Right):
		m.selected = 1
	case key.Matches(keyMsg, m.keys.Submit):
		return m, m.finish(m.selected == 0)
	}
	return m, nil
}

func (m *ConfirmModel) finish(confirmed bool) tea.Cmd {
	m.confirmed = confirmed
	m.done = true
	return tea.Quit
}

// View renders the screen
func (m *ConfirmModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Prepare " + m.service))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Write %d operation(s) to %s?", len(m.ops), styles.Highlight.Render(m.target)))
	b.WriteString("\n\n")

	for _, op := range m.ops {
		b.WriteString(styles.OpKind.Render(string(op.Kind)))
		b.WriteString(styles.OpTarget.Render(op.Target))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	yesBtn := styles.NormalItem.Render(" Yes ")
	noBtn := styles.NormalItem.Render(" No ")
	if m.selected == 0 {
		yesBtn = styles.SelectedItem.Render(" Yes ")
	} else {
		noBtn = styles.SelectedItem.Render(" No ")
	}
	b.WriteString(yesBtn + "  " + noBtn)
	b.WriteString("\n")

	b.WriteString(styles.FormatHelp(
		"y", "yes",
		"n", "no",
		"←/→", "select",
		"enter", "confirm",
	))

	return b.String()
}

// Confirm shows the plan and blocks until the user accepts or declines it
func Confirm(service, target string, ops plan.Plan) (bool, error) {
	p := tea.NewProgram(NewConfirmModel(service, target, ops))
	model, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("TUI error: %w", err)
	}
	if final, ok := model.(*ConfirmModel); ok {
		return final.Confirmed(), nil
	}
	return false, nil
}
