package ui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#0969DA") // GitHub blue
	accentColor  = lipgloss.Color("#2DA44E") // Green
	warningColor = lipgloss.Color("#D29922") // Orange
	dimColor     = lipgloss.Color("#6E7681") // Gray
	linkColor    = lipgloss.Color("#58A6FF") // Light blue
	scoreColor   = lipgloss.Color("#F778BA") // Pink

	HeaderStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor)

	ScoreStyle = lipgloss.NewStyle().
			Foreground(scoreColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Italic(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	LinkStyle = lipgloss.NewStyle().
			Foreground(linkColor).
			Underline(true)
)

// Colored renders text in an arbitrary hex color token.
func Colored(color, text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(text)
}
