package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"specprep/internal/plan"
)

func newConfirmForTest() *ConfirmModel {
	ops := plan.Plan{
		plan.EnsureDir("/out"),
		plan.EnsureDir("/out/petstore"),
		plan.WriteFile("/out/petstore/package.json", []byte("{}")),
	}
	return NewConfirmModel("petstore", "/out/petstore", ops)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestConfirm_YesKey(t *testing.T) {
	m := newConfirmForTest()

	_, cmd := m.Update(runeKey('y'))

	assert.NotNil(t, cmd, "answering quits the program")
	assert.True(t, m.Confirmed())
}

func TestConfirm_NoKey(t *testing.T) {
	m := newConfirmForTest()

	_, cmd := m.Update(runeKey('n'))

	assert.NotNil(t, cmd)
	assert.False(t, m.Confirmed())
}

func TestConfirm_SelectThenEnter(t *testing.T) {
	m := newConfirmForTest()

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.False(t, m.Confirmed(), "No was selected")

	m = newConfirmForTest()
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Confirmed())
}

func TestConfirm_IgnoresOtherMessages(t *testing.T) {
	m := newConfirmForTest()

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	_, cmd = m.Update(runeKey('x'))
	assert.Nil(t, cmd)
	assert.False(t, m.Confirmed())
}

func TestConfirm_ViewListsPlan(t *testing.T) {
	view := newConfirmForTest().View()

	assert.Contains(t, view, "petstore")
	assert.Contains(t, view, "/out/petstore/package.json")
	assert.Contains(t, view, string(plan.KindEnsureDir))
}
