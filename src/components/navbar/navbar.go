// Package navbar provides the narrow-layout chrome: a compact header and a
// bottom navigation row. Both are presentational; History and Discover are
// placeholders.
package navbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mehuljariwala/sentient-ai-assistant/src/components/logo"
)

// Tab identifies a bottom-navigation entry.
type Tab int

const (
	TabHome Tab = iota
	TabHistory
	TabDiscover
)

var tabLabels = map[Tab]string{
	TabHome:     "Home",
	TabHistory:  "History",
	TabDiscover: "Discover",
}

// Header is the one-line top bar shown when the sidebar is hidden.
type Header struct {
	width int

	style     lipgloss.Style
	hintStyle lipgloss.Style
}

// NewHeader creates the narrow-layout header.
func NewHeader() *Header {
	return &Header{
		style:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		hintStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// OnResize updates the header width.
func (h *Header) OnResize(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	title := h.style.Render(logo.Badge() + " Sentient")
	hint := h.hintStyle.Render("ctrl+n new chat")

	gap := h.width - lipgloss.Width(title) - lipgloss.Width(hint)
	if gap < 1 {
		return title
	}
	return title + lipgloss.NewStyle().Width(gap).Render("") + hint
}

// BottomNav is the Home/History/Discover row at the bottom of the narrow
// layout.
type BottomNav struct {
	active Tab
	width  int

	style       lipgloss.Style
	activeStyle lipgloss.Style
}

// NewBottomNav creates the bottom navigation with Home active.
func NewBottomNav() *BottomNav {
	return &BottomNav{
		active:      TabHome,
		style:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 2),
		activeStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true).Padding(0, 2),
	}
}

// OnResize updates the nav width.
func (n *BottomNav) OnResize(width int) {
	n.width = width
}

// Active returns the highlighted tab.
func (n *BottomNav) Active() Tab {
	return n.active
}

// View renders the row centered in the available width.
func (n *BottomNav) View() string {
	var items []string
	for _, tab := range []Tab{TabHome, TabHistory, TabDiscover} {
		style := n.style
		if tab == n.active {
			style = n.activeStyle
		}
		items = append(items, style.Render(tabLabels[tab]))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, items...)
	if n.width <= lipgloss.Width(row) {
		return row
	}
	return lipgloss.PlaceHorizontal(n.width, lipgloss.Center, row)
}
