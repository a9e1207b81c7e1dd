// Package styles provides shared lipgloss styles for cmsg output.
//
// Styles are bound to a [lipgloss.Renderer] so callers control the color
// profile: the default renderer downgrades to plain text on non-terminal
// writers, which would silently drop styling for forced-color output.
package styles

import "github.com/charmbracelet/lipgloss"

// Colors used in listings
var (
	// Accent is the highlight color for rule patterns (pink)
	Accent lipgloss.TerminalColor = lipgloss.Color("212")

	// Muted is used for secondary text (gray)
	Muted lipgloss.TerminalColor = lipgloss.Color("240")
)

// AccentStyle returns the accent style (bold pink) bound to r.
func AccentStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Foreground(Accent).
		Bold(true)
}

// MutedStyle returns the muted style bound to r.
func MutedStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(Muted)
}
