// Package logo renders the Sentient wordmark.
package logo

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"
)

var (
	wordmarkStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	badgeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("63")).Padding(0, 1)
)

// Wordmark returns the large ascii-art logo, centered in width. Falls back to
// the compact mark when the art does not fit.
func Wordmark(width int) string {
	art := figure.NewFigure("SENTIENT", "", true).String()
	art = strings.Trim(art, "\n")

	for _, line := range strings.Split(art, "\n") {
		if lipgloss.Width(line) > width {
			return lipgloss.PlaceHorizontal(width, lipgloss.Center, Badge())
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, wordmarkStyle.Render(art))
}

// Badge returns the compact "S" mark used in the header and as the
// assistant's avatar.
func Badge() string {
	return badgeStyle.Render("S")
}
