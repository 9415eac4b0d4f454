// Package chat provides the conversation pane: the welcome screen, the
// message transcript and the input composer.
package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mehuljariwala/sentient-ai-assistant/src/components/logo"
	"github.com/mehuljariwala/sentient-ai-assistant/src/models"
	"github.com/mehuljariwala/sentient-ai-assistant/src/services/assistant"
)

const (
	welcomeTitle    = "Welcome to Sentient"
	welcomeSubtitle = "Your AI companion for meaningful conversations"

	// Follow-up prompts show only early in a conversation.
	maxPromptsForFollowUp = 3
	minMessagesForPrompts = 3

	statusVisibleFor = 2 * time.Second
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// PromptSelectedMsg carries a suggested prompt the user picked.
type PromptSelectedMsg struct {
	Text string
}

// SpinnerTickMsg advances the thinking indicator.
type SpinnerTickMsg struct{}

// clearStatusMsg hides the transient status line.
type clearStatusMsg struct{ at time.Time }

// View renders the current conversation, or the welcome screen when there is
// none, plus the suggested-prompt row.
type View struct {
	conversation *models.Conversation
	loading      bool
	prompts      []models.SuggestedPrompt

	width           int
	height          int
	focused         bool
	selectedMessage int // -1 means none
	selectedPrompt  int
	spinnerFrame    int
	status          string
	statusSetAt     time.Time

	copyToClipboard func(string) error

	titleStyle     lipgloss.Style
	subtitleStyle  lipgloss.Style
	userStyle      lipgloss.Style
	assistantStyle lipgloss.Style
	bodyStyle      lipgloss.Style
	selectedStyle  lipgloss.Style
	promptStyle    lipgloss.Style
	promptSelStyle lipgloss.Style
	statusStyle    lipgloss.Style
}

// NewView creates a conversation view with the default prompt set.
func NewView() *View {
	return &View{
		prompts:         assistant.SuggestedPrompts,
		selectedMessage: -1,
		copyToClipboard: clipboard.WriteAll,
		titleStyle:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		subtitleStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		userStyle:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		assistantStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		bodyStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		selectedStyle:   lipgloss.NewStyle().Background(lipgloss.Color("236")),
		promptStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		promptSelStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")),
		statusStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	}
}

// SetConversation replaces the rendered conversation; nil shows the welcome
// screen. Selection is cleared when the conversation changes identity.
func (v *View) SetConversation(conv *models.Conversation, loading bool) {
	if conv == nil || v.conversation == nil || conv.ID != v.conversation.ID {
		v.selectedMessage = -1
	}
	v.conversation = conv
	v.loading = loading
	if v.conversation != nil && v.selectedMessage >= len(v.conversation.Messages) {
		v.selectedMessage = -1
	}
	if n := len(v.visiblePrompts()); n > 0 && v.selectedPrompt >= n {
		v.selectedPrompt = n - 1
	}
}

// SetFocused toggles keyboard focus for message selection and prompt picking.
func (v *View) SetFocused(focused bool) {
	v.focused = focused
	if !focused {
		v.selectedMessage = -1
	}
}

// OnResize updates the pane dimensions.
func (v *View) OnResize(width, height int) {
	v.width = width
	v.height = height
}

// ShowsWelcome reports whether the welcome screen is visible.
func (v *View) ShowsWelcome() bool {
	return v.conversation == nil || len(v.conversation.Messages) == 0
}

// visiblePrompts returns the prompt subset for the current screen: the full
// set on the welcome screen, a short follow-up row early in a conversation,
// nothing afterwards.
func (v *View) visiblePrompts() []models.SuggestedPrompt {
	if v.ShowsWelcome() {
		return v.prompts
	}
	if len(v.conversation.Messages) < minMessagesForPrompts {
		if len(v.prompts) > maxPromptsForFollowUp {
			return v.prompts[:maxPromptsForFollowUp]
		}
		return v.prompts
	}
	return nil
}

// TickSpinner returns the command driving the thinking indicator.
func TickSpinner() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}

// Update handles spinner ticks, status expiry and, while focused, message
// selection and prompt picking.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case SpinnerTickMsg:
		v.spinnerFrame = (v.spinnerFrame + 1) % len(spinnerFrames)
		if v.loading {
			return v, TickSpinner()
		}
		return v, nil
	case clearStatusMsg:
		if msg.at.Equal(v.statusSetAt) {
			v.status = ""
		}
		return v, nil
	case tea.KeyMsg:
		if !v.focused {
			return v, nil
		}
		return v.handleKeyPress(msg)
	}
	return v, nil
}

func (v *View) handleKeyPress(key tea.KeyMsg) (*View, tea.Cmd) {
	prompts := v.visiblePrompts()

	switch key.String() {
	case "up", "k":
		if v.messageCount() > 0 {
			if v.selectedMessage < 0 {
				v.selectedMessage = v.messageCount() - 1
			} else if v.selectedMessage > 0 {
				v.selectedMessage--
			}
		}
	case "down", "j":
		if v.selectedMessage >= 0 {
			if v.selectedMessage < v.messageCount()-1 {
				v.selectedMessage++
			} else {
				v.selectedMessage = -1
			}
		}
	case "left", "h":
		if len(prompts) > 0 && v.selectedPrompt > 0 {
			v.selectedPrompt--
		}
	case "right", "l":
		if len(prompts) > 0 && v.selectedPrompt < len(prompts)-1 {
			v.selectedPrompt++
		}
	case "enter":
		if len(prompts) > 0 && v.selectedMessage < 0 {
			if v.selectedPrompt >= len(prompts) {
				v.selectedPrompt = 0
			}
			text := prompts[v.selectedPrompt].Text
			return v, func() tea.Msg { return PromptSelectedMsg{Text: text} }
		}
	case "c", "ctrl+c":
		return v, v.copySelected()
	case "esc":
		v.selectedMessage = -1
	}
	return v, nil
}

// CopySelected copies the selected message body to the clipboard and shows a
// transient status. It is a no-op without a selection.
func (v *View) CopySelected() tea.Cmd {
	return v.copySelected()
}

// HasSelection reports whether a message is selected.
func (v *View) HasSelection() bool {
	return v.selectedMessage >= 0
}

func (v *View) copySelected() tea.Cmd {
	if v.selectedMessage < 0 || v.selectedMessage >= v.messageCount() {
		return nil
	}
	msg := v.conversation.Messages[v.selectedMessage]
	if err := v.copyToClipboard(msg.Content); err != nil {
		return v.setStatus("Clipboard unavailable")
	}
	return v.setStatus("Copied message to clipboard")
}

func (v *View) setStatus(status string) tea.Cmd {
	v.status = status
	v.statusSetAt = time.Now()
	at := v.statusSetAt
	return tea.Tick(statusVisibleFor, func(time.Time) tea.Msg {
		return clearStatusMsg{at: at}
	})
}

func (v *View) messageCount() int {
	if v.conversation == nil {
		return 0
	}
	return len(v.conversation.Messages)
}

// View renders the pane.
func (v *View) View() string {
	if v.width <= 0 {
		return ""
	}
	if v.ShowsWelcome() {
		return v.renderWelcome()
	}
	return v.renderConversation()
}

func (v *View) renderWelcome() string {
	var b strings.Builder
	b.WriteString(logo.Wordmark(v.width))
	b.WriteString("\n\n")
	b.WriteString(v.titleStyle.Render(welcomeTitle))
	b.WriteString("\n")
	b.WriteString(v.subtitleStyle.Render(welcomeSubtitle))
	b.WriteString("\n\n")
	b.WriteString(v.renderPrompts())

	return lipgloss.NewStyle().
		Width(v.width).
		Height(v.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (v *View) renderConversation() string {
	var sections []string
	for i, msg := range v.conversation.Messages {
		sections = append(sections, v.renderMessage(msg, i))
	}
	if v.loading {
		frame := spinnerFrames[v.spinnerFrame]
		sections = append(sections, fmt.Sprintf("%s %s Thinking...",
			v.assistantStyle.Render("Sentient"), frame))
	}
	if prompts := v.renderPrompts(); prompts != "" {
		sections = append(sections, prompts)
	}
	if v.status != "" {
		sections = append(sections, v.statusStyle.Render(v.status))
	}

	content := strings.Join(sections, "\n\n")
	lines := strings.Split(content, "\n")
	if len(lines) > v.height {
		lines = lines[len(lines)-v.height:]
	}
	return lipgloss.NewStyle().Width(v.width).Render(strings.Join(lines, "\n"))
}

func (v *View) renderMessage(msg models.Message, index int) string {
	label := v.userStyle.Render("You")
	if msg.Role == models.RoleAssistant {
		label = v.assistantStyle.Render("Sentient")
	}

	body := v.bodyStyle.Render(wrapText(msg.Content, v.width-2))
	block := label + "\n" + body
	if v.focused && index == v.selectedMessage {
		return v.selectedStyle.Width(v.width).Render(block)
	}
	return block
}

func (v *View) renderPrompts() string {
	prompts := v.visiblePrompts()
	if len(prompts) == 0 {
		return ""
	}
	selected := v.selectedPrompt
	if selected >= len(prompts) {
		selected = len(prompts) - 1
	}

	var cards []string
	for i, p := range prompts {
		style := v.promptStyle
		if v.focused && i == selected && v.selectedMessage < 0 {
			style = v.promptSelStyle
		}
		cards = append(cards, style.Render(p.Text))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	if lipgloss.Width(row) <= v.width {
		return row
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// wrapText soft-wraps text at word boundaries to the given width.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			result.WriteString("\n")
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			if len(current)+1+len(word) <= width {
				current += " " + word
			} else {
				result.WriteString(current)
				result.WriteString("\n")
				current = word
			}
		}
		result.WriteString(current)
	}
	return result.String()
}
