package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	primaryColor = lipgloss.Color("#7D56F4") // Purple - headers, accents
	successColor = lipgloss.Color("#43BF6D") // Green - success, completed
	errorColor   = lipgloss.Color("#FF5555") // Red - errors, overdue, high priority
	warningColor = lipgloss.Color("#FFA500") // Orange - due today
	infoColor    = lipgloss.Color("#56B6C2") // Cyan - due tomorrow
	mutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	textColor    = lipgloss.Color("#FFFFFF") // White - main content
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	statusReadyStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true)

	statusSuccessStyle = lipgloss.NewStyle().
				Foreground(successColor).
				Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	selectedStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(primaryColor).
			Bold(true)

	completedStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Strikethrough(true)

	highPriorityStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true)

	lowPriorityStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	idStyle = lipgloss.NewStyle().
		Foreground(mutedColor)

	labelStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	valueStyle = lipgloss.NewStyle().
			Foreground(textColor)

	fieldActiveStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	fieldInactiveStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	hintStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	overdueStyle  = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	todayStyle    = lipgloss.NewStyle().Foreground(warningColor)
	tomorrowStyle = lipgloss.NewStyle().Foreground(infoColor)
	upcomingStyle = lipgloss.NewStyle().Foreground(textColor)
)
