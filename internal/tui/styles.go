package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle     lipgloss.Style
	titleStyle      lipgloss.Style
	textStyle       lipgloss.Style
	mutedStyle      lipgloss.Style
	panelStyle      lipgloss.Style
	activePanel     lipgloss.Style
	buttonStyle     lipgloss.Style
	buttonDisabled  lipgloss.Style
	badgeWarning    lipgloss.Style
	slideTitleStyle lipgloss.Style
	bulletStyle     lipgloss.Style
)

// rebuildStyles derives all styles from the current palette.
func rebuildStyles() {
	headerStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	titleStyle = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	textStyle = lipgloss.NewStyle().Foreground(ColorText)
	mutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1)
	activePanel = panelStyle.BorderForeground(ColorAccent)
	buttonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(ColorAccent).
		Bold(true).
		Padding(0, 2)
	buttonDisabled = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Background(lipgloss.Color("236")).
		Padding(0, 2)
	badgeWarning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(ColorWarning).
		Padding(0, 1)
	slideTitleStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true).MarginBottom(1)
	bulletStyle = lipgloss.NewStyle().Foreground(ColorText)
}
