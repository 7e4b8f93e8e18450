package render

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, professional, readable on dark terminals
var (
	primary = lipgloss.Color("#3B82F6") // Blue
	success = lipgloss.Color("#22C55E") // Green
	warning = lipgloss.Color("#F59E0B") // Amber
	danger  = lipgloss.Color("#F43F5E") // Rose
	text    = lipgloss.Color("#F8FAFC") // White
	textDim = lipgloss.Color("#94A3B8") // Slate
	border  = lipgloss.Color("#334155") // Slate
)

var (
	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(text)

	dimStyle = lipgloss.NewStyle().
			Foreground(textDim)

	passStyle = lipgloss.NewStyle().
			Foreground(success).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(danger).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(warning)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2)
)

// statusStyle picks a color for a domain status string.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case "strong":
		return passStyle
	case "weak":
		return failStyle
	default:
		return warnStyle
	}
}
