package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor = lipgloss.Color("#7C3AED") // purple
	okColor      = lipgloss.Color("#10B981") // green
	mutedColor   = lipgloss.Color("#6B7280") // gray
	dangerColor  = lipgloss.Color("#EF4444") // red
	warnColor    = lipgloss.Color("#F59E0B") // yellow

	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primaryColor).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))

	statusOkStyle = lipgloss.NewStyle().
			Foreground(okColor)

	statusWarnStyle = lipgloss.NewStyle().
			Foreground(warnColor)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(dangerColor)

	logStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)
