package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/pali/pali-terminal/internal/api"
	"github.com/pali/pali-terminal/internal/dates"
)

// Color palette for command output
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success, checkmarks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors, high priority
	WarningColor = lipgloss.Color("#FFA500") // Orange - due today/tomorrow
	InfoColor    = lipgloss.Color("#56B6C2") // Cyan - low priority
	MutedColor   = lipgloss.Color("#626262") // Gray - IDs, secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	IDStyle = lipgloss.NewStyle().
		Foreground(MutedColor)

	LabelStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	CompletedStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Strikethrough(true)

	HighPriorityStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	LowPriorityStyle = lipgloss.NewStyle().
				Foreground(InfoColor)

	OverdueStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SoonStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	UpcomingStyle = lipgloss.NewStyle().
			Foreground(InfoColor)
)

// IsTerminal reports whether stdout is attached to a terminal. Piped
// output skips styling so scripts see plain text.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// FormatTodoLine renders one todo as a single list line:
//
//	✓ [a1b2c3d4] Buy groceries !! [Due: Today]
func FormatTodoLine(todo api.Todo, width int) string {
	status := "○"
	if todo.Completed {
		status = "✓"
	}

	marker := ""
	if todo.Priority >= api.PriorityLow && todo.Priority <= api.PriorityHigh {
		marker = strings.Repeat("!", todo.Priority)
	}

	title := todo.Title
	// status + id block + markers + due label all need room
	if max := width - 30; max > 10 && len(title) > max {
		title = title[:max-3] + "..."
	}

	if todo.Completed {
		title = CompletedStyle.Render(title)
	}

	line := fmt.Sprintf("%s [%s] %s", status, IDStyle.Render(api.ShortID(todo.ID)), title)
	if marker != "" {
		line += " " + priorityStyle(todo.Priority).Render(marker)
	}
	if todo.DueDate != nil {
		label, urgency := dates.Relative(*todo.DueDate, time.Now())
		line += " " + urgencyStyle(urgency).Render("[Due: "+label+"]")
	}
	return line
}

// FormatTodoDetail renders all fields of a todo as label: value rows.
func FormatTodoDetail(todo api.Todo) string {
	status := "Pending"
	if todo.Completed {
		status = SuccessStyle.Render("Completed")
	}

	description := todo.Description
	if description == "" {
		description = "(none)"
	}

	due := "Not set"
	if todo.DueDate != nil {
		label, urgency := dates.Relative(*todo.DueDate, time.Now())
		due = dates.Timestamp(*todo.DueDate)
		switch urgency {
		case dates.Overdue:
			due += " " + OverdueStyle.Render("(overdue)")
		case dates.Today, dates.Tomorrow:
			due += " " + SoonStyle.Render("("+label+")")
		}
	}

	row := func(label, value string) string {
		return fmt.Sprintf("%s %s", LabelStyle.Render(label+":"), value)
	}

	return strings.Join([]string{
		row("ID         ", todo.ID),
		row("Title      ", todo.Title),
		row("Description", description),
		row("Status     ", status),
		row("Priority   ", api.PriorityLabel(todo.Priority)),
		row("Due        ", due),
		row("Created    ", dates.Timestamp(todo.CreatedAt)),
		row("Updated    ", dates.Timestamp(todo.UpdatedAt)),
	}, "\n")
}

func priorityStyle(p int) lipgloss.Style {
	switch p {
	case api.PriorityHigh:
		return HighPriorityStyle
	case api.PriorityLow:
		return LowPriorityStyle
	default:
		return lipgloss.NewStyle().Foreground(TextColor)
	}
}

func urgencyStyle(u dates.Urgency) lipgloss.Style {
	switch u {
	case dates.Overdue:
		return OverdueStyle
	case dates.Today, dates.Tomorrow:
		return SoonStyle
	default:
		return UpcomingStyle
	}
}
