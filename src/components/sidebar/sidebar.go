// Package sidebar provides the conversation-list pane of the wide layout.
package sidebar

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mehuljariwala/sentient-ai-assistant/src/components/logo"
	"github.com/mehuljariwala/sentient-ai-assistant/src/models"
)

// Action messages emitted towards the root model, which forwards them to the
// conversation store.

// ConversationSelectedMsg asks for the given conversation to become current.
type ConversationSelectedMsg struct {
	Conversation *models.Conversation
}

// NewConversationMsg asks for a fresh conversation.
type NewConversationMsg struct{}

// DeleteConversationMsg asks for the conversation with ID to be removed.
type DeleteConversationMsg struct {
	ID string
}

// ClearConversationsMsg asks for the whole collection to be emptied.
type ClearConversationsMsg struct{}

// Model is the sidebar pane. It renders the conversation list newest-first
// and keeps a local selection; all data comes from store snapshots.
type Model struct {
	conversations []*models.Conversation
	currentID     string

	width         int
	height        int
	selectedIndex int
	scrollOffset  int
	focused       bool
	collapsed     bool

	style         lipgloss.Style
	headerStyle   lipgloss.Style
	itemStyle     lipgloss.Style
	selectedStyle lipgloss.Style
	activeStyle   lipgloss.Style
	statusStyle   lipgloss.Style
}

// New creates a sidebar.
func New() *Model {
	return &Model{
		width:         28,
		height:        24,
		style:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		headerStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Padding(0, 1),
		itemStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		selectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("240")).Foreground(lipgloss.Color("15")).Padding(0, 1),
		activeStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true).Padding(0, 1),
		statusStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1),
	}
}

// SetConversations replaces the listed conversations (newest-first) and the
// id of the current one.
func (m *Model) SetConversations(conversations []*models.Conversation, currentID string) {
	m.conversations = conversations
	m.currentID = currentID
	if m.selectedIndex >= len(conversations) {
		m.selectedIndex = len(conversations) - 1
	}
	if m.selectedIndex < 0 {
		m.selectedIndex = 0
	}
	m.adjustScrollOffset()
}

// SetFocused toggles keyboard focus.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// Focused reports keyboard focus.
func (m *Model) Focused() bool {
	return m.focused
}

// OnResize updates the pane dimensions.
func (m *Model) OnResize(width, height int) {
	m.width = width
	m.height = height
	m.collapsed = width > 0 && width < 20
	m.adjustScrollOffset()
}

// SelectedConversation returns the conversation under the cursor, or nil.
func (m *Model) SelectedConversation() *models.Conversation {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.conversations) {
		return m.conversations[m.selectedIndex]
	}
	return nil
}

// Update handles keyboard input while the sidebar is focused.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || m.collapsed {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.selectedIndex > 0 {
			m.selectedIndex--
			m.adjustScrollOffset()
		}
	case "down", "j":
		if m.selectedIndex < len(m.conversations)-1 {
			m.selectedIndex++
			m.adjustScrollOffset()
		}
	case "home":
		m.selectedIndex = 0
		m.scrollOffset = 0
	case "end":
		m.selectedIndex = len(m.conversations) - 1
		m.adjustScrollOffset()
	case "enter":
		if conv := m.SelectedConversation(); conv != nil {
			return m, func() tea.Msg { return ConversationSelectedMsg{Conversation: conv} }
		}
	case "n":
		return m, func() tea.Msg { return NewConversationMsg{} }
	case "d", "delete":
		if conv := m.SelectedConversation(); conv != nil {
			id := conv.ID
			return m, func() tea.Msg { return DeleteConversationMsg{ID: id} }
		}
	case "ctrl+x":
		return m, func() tea.Msg { return ClearConversationsMsg{} }
	}
	return m, nil
}

// View renders the pane.
func (m *Model) View() string {
	if m.width <= 0 {
		return ""
	}
	if m.collapsed {
		return m.renderCollapsedView()
	}

	innerWidth := m.width - 2  // borders
	innerHeight := m.height - 2
	headerHeight := 2
	statusHeight := 1
	listHeight := innerHeight - headerHeight - statusHeight
	if listHeight < 1 {
		listHeight = 1
	}

	header := m.renderHeader(innerWidth)
	list := m.renderList(innerWidth, listHeight)
	status := m.renderStatus(innerWidth)

	view := fmt.Sprintf("%s\n%s\n%s", header, list, status)
	return m.style.Width(innerWidth).Height(innerHeight).Render(view)
}

func (m *Model) renderCollapsedView() string {
	content := logo.Badge()
	if len(m.conversations) > 0 {
		content = fmt.Sprintf("%s %d", logo.Badge(), len(m.conversations))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(m.width-2).
		Height(m.height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m *Model) renderHeader(width int) string {
	title := fmt.Sprintf("%s Sentient", logo.Badge())
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("n new chat")
	return m.headerStyle.Width(width).Render(title) + "\n" + m.statusStyle.Width(width).Render(hint)
}

func (m *Model) renderList(width, height int) string {
	if len(m.conversations) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No conversations")
	}

	start := m.scrollOffset
	end := start + height
	if end > len(m.conversations) {
		end = len(m.conversations)
	}

	var lines []string
	for i := start; i < end; i++ {
		lines = append(lines, m.renderItem(m.conversations[i], width, i))
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderItem(conv *models.Conversation, width, index int) string {
	style := m.itemStyle
	switch {
	case m.focused && index == m.selectedIndex:
		style = m.selectedStyle
	case conv.ID == m.currentID:
		style = m.activeStyle
	}

	title := conv.Title
	if title == "" {
		title = models.DefaultConversationTitle
	}
	if conv.ID == m.currentID {
		title = "• " + title
	}

	budget := width - style.GetHorizontalPadding()
	if runes := []rune(title); len(runes) > budget && budget > 3 {
		title = string(runes[:budget-3]) + "..."
	}
	return style.Width(width).Render(title)
}

func (m *Model) renderStatus(width int) string {
	if len(m.conversations) == 0 {
		return m.statusStyle.Width(width).Render("")
	}
	status := fmt.Sprintf("%d/%d", m.selectedIndex+1, len(m.conversations))
	return m.statusStyle.Width(width).Render(status)
}

func (m *Model) adjustScrollOffset() {
	if len(m.conversations) == 0 {
		m.scrollOffset = 0
		return
	}

	listHeight := m.height - 5 // borders, header, hint, status
	if listHeight < 1 {
		listHeight = 1
	}

	if m.selectedIndex < m.scrollOffset {
		m.scrollOffset = m.selectedIndex
	} else if m.selectedIndex >= m.scrollOffset+listHeight {
		m.scrollOffset = m.selectedIndex - listHeight + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
	if m.scrollOffset >= len(m.conversations) {
		m.scrollOffset = len(m.conversations) - 1
	}
}
