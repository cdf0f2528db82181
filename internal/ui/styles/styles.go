// Package styles holds the lipgloss styles and color helpers for the demo.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	subtitleColor = lipgloss.Color("244")
	footerColor   = lipgloss.Color("240")

	subtitleStyle = lipgloss.NewStyle().Foreground(subtitleColor)
	footerStyle   = lipgloss.NewStyle().Foreground(footerColor)

	promptStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// Card returns the style for a card body of the given outer dimensions,
// border tinted with the given color. Width and height include the border.
func Card(width, height int, border lipgloss.Color) lipgloss.Style {
	innerWidth := width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}
	innerHeight := height - 2
	if innerHeight < 0 {
		innerHeight = 0
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(innerWidth).
		Height(innerHeight)
}

// Title returns the bold header style.
func Title() lipgloss.Style {
	return titleStyle
}

// Subtitle returns the dimmed card body style.
func Subtitle() lipgloss.Style {
	return subtitleStyle
}

// Footer returns the dimmed status-line style.
func Footer() lipgloss.Style {
	return footerStyle
}

// Prompt returns the bordered style for input popups.
func Prompt() lipgloss.Style {
	return promptStyle
}
