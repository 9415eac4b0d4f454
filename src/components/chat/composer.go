package chat

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	placeholderFirst    = "Ask me anything..."
	placeholderFollowUp = "Ask a follow up..."

	modeMini    = "4s - mini"
	modePreview = "s1 - preview"
)

// SubmitMsg carries the composer content when the user presses enter.
type SubmitMsg struct {
	Content string
}

// BlinkMsg toggles the composer cursor.
type BlinkMsg struct{}

// Composer is the single-line text input at the bottom of the chat pane.
type Composer struct {
	buffer    []rune
	cursorPos int
	blink     bool
	focused   bool
	disabled  bool
	followUp  bool
	mode      string
	width     int

	style         lipgloss.Style
	focusedStyle  lipgloss.Style
	disabledStyle lipgloss.Style
	modeStyle     lipgloss.Style
	placeholder   lipgloss.Style
}

// NewComposer creates an empty composer in the default response mode.
func NewComposer() *Composer {
	return &Composer{
		mode:          modeMini,
		width:         60,
		style:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		focusedStyle:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1),
		disabledStyle: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		modeStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Blink returns the command driving the cursor blink.
func Blink() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return BlinkMsg{}
	})
}

// SetFocused toggles keyboard focus.
func (c *Composer) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.blink = true
	}
}

// Focused reports keyboard focus.
func (c *Composer) Focused() bool {
	return c.focused
}

// SetDisabled blocks input, used while a response is being generated.
func (c *Composer) SetDisabled(disabled bool) {
	c.disabled = disabled
}

// SetFollowUp switches the placeholder between the first-message and
// follow-up variants.
func (c *Composer) SetFollowUp(followUp bool) {
	c.followUp = followUp
}

// OnResize updates the composer width.
func (c *Composer) OnResize(width int) {
	c.width = width
}

// Value returns the current buffer content.
func (c *Composer) Value() string {
	return string(c.buffer)
}

// Empty reports whether the buffer has no content.
func (c *Composer) Empty() bool {
	return len(c.buffer) == 0
}

// Mode returns the active response-mode label.
func (c *Composer) Mode() string {
	return c.mode
}

// SetValue replaces the buffer content and moves the cursor to the end.
func (c *Composer) SetValue(value string) {
	c.buffer = []rune(value)
	c.cursorPos = len(c.buffer)
}

// Update handles key input and blink ticks.
func (c *Composer) Update(msg tea.Msg) (*Composer, tea.Cmd) {
	switch msg := msg.(type) {
	case BlinkMsg:
		c.blink = !c.blink
		if c.focused {
			return c, Blink()
		}
		return c, nil
	case tea.KeyMsg:
		if !c.focused {
			return c, nil
		}
		return c.handleKeyPress(msg)
	}
	return c, nil
}

func (c *Composer) handleKeyPress(key tea.KeyMsg) (*Composer, tea.Cmd) {
	// The mode toggle stays available while a response is in flight.
	if key.String() == "ctrl+t" {
		if c.mode == modeMini {
			c.mode = modePreview
		} else {
			c.mode = modeMini
		}
		return c, nil
	}
	if c.disabled {
		return c, nil
	}

	switch key.Type {
	case tea.KeyEnter:
		content := strings.TrimSpace(string(c.buffer))
		if content == "" {
			return c, nil
		}
		c.buffer = nil
		c.cursorPos = 0
		return c, func() tea.Msg { return SubmitMsg{Content: content} }
	case tea.KeyBackspace:
		if c.cursorPos > 0 {
			c.buffer = append(c.buffer[:c.cursorPos-1], c.buffer[c.cursorPos:]...)
			c.cursorPos--
		}
	case tea.KeyDelete:
		if c.cursorPos < len(c.buffer) {
			c.buffer = append(c.buffer[:c.cursorPos], c.buffer[c.cursorPos+1:]...)
		}
	case tea.KeyLeft:
		if c.cursorPos > 0 {
			c.cursorPos--
		}
	case tea.KeyRight:
		if c.cursorPos < len(c.buffer) {
			c.cursorPos++
		}
	case tea.KeyHome, tea.KeyCtrlA:
		c.cursorPos = 0
	case tea.KeyEnd, tea.KeyCtrlE:
		c.cursorPos = len(c.buffer)
	case tea.KeyCtrlU:
		c.buffer = nil
		c.cursorPos = 0
	case tea.KeySpace:
		c.insertRunes([]rune{' '})
	case tea.KeyRunes:
		c.insertRunes(key.Runes)
	}
	return c, nil
}

func (c *Composer) insertRunes(runes []rune) {
	buffer := make([]rune, 0, len(c.buffer)+len(runes))
	buffer = append(buffer, c.buffer[:c.cursorPos]...)
	buffer = append(buffer, runes...)
	buffer = append(buffer, c.buffer[c.cursorPos:]...)
	c.buffer = buffer
	c.cursorPos += len(runes)
}

// View renders the input box with the mode label underneath.
func (c *Composer) View() string {
	innerWidth := c.width - 4 // borders and padding
	if innerWidth < 1 {
		innerWidth = 1
	}

	var content string
	switch {
	case len(c.buffer) == 0 && !c.focused:
		content = c.placeholder.Render(c.currentPlaceholder())
	case len(c.buffer) == 0:
		cursor := " "
		if c.blink {
			cursor = "█"
		}
		content = cursor + c.placeholder.Render(c.currentPlaceholder())
	default:
		content = c.renderBuffer()
	}

	style := c.style
	if c.disabled {
		style = c.disabledStyle
	} else if c.focused {
		style = c.focusedStyle
	}

	box := style.Width(innerWidth).Render(content)
	mode := c.modeStyle.Render("ctrl+t " + c.mode)
	return box + "\n" + mode
}

func (c *Composer) renderBuffer() string {
	if !c.focused {
		return string(c.buffer)
	}

	cursor := " "
	if c.blink {
		cursor = "█"
	}
	before := string(c.buffer[:c.cursorPos])
	after := ""
	if c.cursorPos < len(c.buffer) {
		cursor = string(c.buffer[c.cursorPos])
		if c.blink {
			cursor = lipgloss.NewStyle().Reverse(true).Render(cursor)
		}
		after = string(c.buffer[c.cursorPos+1:])
	}
	return before + cursor + after
}

func (c *Composer) currentPlaceholder() string {
	if c.followUp {
		return placeholderFollowUp
	}
	return placeholderFirst
}
