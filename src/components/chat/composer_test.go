package chat

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeString(c *Composer, s string) {
	for _, r := range s {
		if r == ' ' {
			c.Update(tea.KeyMsg{Type: tea.KeySpace})
			continue
		}
		c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestTypingBuildsBuffer(t *testing.T) {
	c := NewComposer()
	c.SetFocused(true)
	typeString(c, "hello world")

	assert.Equal(t, "hello world", c.Value())
	assert.False(t, c.Empty())
}

func TestCursorEditing(t *testing.T) {
	c := NewComposer()
	c.SetFocused(true)
	typeString(c, "helo")

	c.Update(tea.KeyMsg{Type: tea.KeyLeft})
	c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	assert.Equal(t, "hello", c.Value())

	c.Update(tea.KeyMsg{Type: tea.KeyHome})
	c.Update(tea.KeyMsg{Type: tea.KeyDelete})
	assert.Equal(t, "ello", c.Value())

	c.Update(tea.KeyMsg{Type: tea.KeyEnd})
	c.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "ell", c.Value())

	c.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.True(t, c.Empty())
}

func TestEnterSubmitsTrimmedContent(t *testing.T) {
	c := NewComposer()
	c.SetFocused(true)
	typeString(c, "  hello  ")

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(SubmitMsg)
	require.True(t, ok)
	assert.Equal(t, "hello", msg.Content)
	assert.True(t, c.Empty())
}

func TestEnterWithBlankBufferDoesNothing(t *testing.T) {
	c := NewComposer()
	c.SetFocused(true)
	typeString(c, "   ")

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestDisabledComposerIgnoresInput(t *testing.T) {
	c := NewComposer()
	c.SetFocused(true)
	c.SetDisabled(true)
	typeString(c, "hello")

	assert.True(t, c.Empty())

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestModeToggle(t *testing.T) {
	c := NewComposer()
	c.SetFocused(true)
	assert.Equal(t, "4s - mini", c.Mode())

	c.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, "s1 - preview", c.Mode())

	c.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, "4s - mini", c.Mode())
}

func TestModeToggleWorksWhileDisabled(t *testing.T) {
	c := NewComposer()
	c.SetFocused(true)
	c.SetDisabled(true)

	c.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, "s1 - preview", c.Mode())
}

func TestPlaceholderSwitchesForFollowUp(t *testing.T) {
	c := NewComposer()
	c.OnResize(60)

	assert.Contains(t, c.View(), "Ask me anything...")

	c.SetFollowUp(true)
	assert.Contains(t, c.View(), "Ask a follow up...")
}

func TestUnfocusedComposerIgnoresKeys(t *testing.T) {
	c := NewComposer()
	typeString(c, "hello")
	assert.True(t, c.Empty())
}

func TestBlinkTickContinuesWhileFocused(t *testing.T) {
	c := NewComposer()
	c.SetFocused(true)

	_, cmd := c.Update(BlinkMsg{})
	assert.NotNil(t, cmd)

	c.SetFocused(false)
	_, cmd = c.Update(BlinkMsg{})
	assert.Nil(t, cmd)
}
