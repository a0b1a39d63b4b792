package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorBlue   = lipgloss.Color("#4A9EFF")
	colorOrange = lipgloss.Color("#FFB86C")
	colorWhite  = lipgloss.Color("#F8F8F2")
	colorGray   = lipgloss.Color("#6272A4")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorYellow = lipgloss.Color("#F1FA8C")
	colorRed    = lipgloss.Color("#FF5555")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	raidPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorOrange).
			Padding(0, 1)

	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	raidTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorOrange)
	labelStyle     = lipgloss.NewStyle().Foreground(colorGray)
	valueStyle     = lipgloss.NewStyle().Foreground(colorWhite)
	dimStyle       = lipgloss.NewStyle().Foreground(colorGray)
	helpStyle      = lipgloss.NewStyle().Foreground(colorGray)
)

// tempStyle colors a Celsius reading: green below 45, yellow to 55, red above.
func tempStyle(celsius int) lipgloss.Style {
	switch {
	case celsius >= 55:
		return lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	case celsius >= 45:
		return lipgloss.NewStyle().Foreground(colorYellow)
	default:
		return lipgloss.NewStyle().Foreground(colorGreen)
	}
}
