package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKeyMapMatchesArrowsAndVimKeys(t *testing.T) {
	k := defaultKeyMap()
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyLeft}, k.PrevPage))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyPgDown}, k.NextPage))
	assert.True(t, key.Matches(runeKey("j"), k.Down))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyUp}, k.Up))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, k.ForceQuit))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, k.Quit))
	assert.False(t, key.Matches(runeKey("x"), k.Reload))
}

func TestListBindingsFollowState(t *testing.T) {
	k := defaultKeyMap()

	assert.Len(t, k.listBindings(true, true), 1)

	closed := k.listBindings(false, false)
	open := k.listBindings(false, true)
	assert.Len(t, open, len(closed)+1)
	assert.Equal(t, "esc", open[4].Help().Key)
}
