package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pali/pali-terminal/internal/api"
	"github.com/pali/pali-terminal/internal/dates"
)

// View implements tea.Model. It reads model state and never writes it.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewStatusLine())
	b.WriteString("\n\n")

	switch m.screen {
	case ScreenTodoList:
		b.WriteString(m.viewList())
	case ScreenAddTodo:
		b.WriteString(m.viewForm("Add New Todo"))
	case ScreenEditTodo:
		b.WriteString(m.viewForm("Edit Todo"))
	case ScreenSearch:
		b.WriteString(m.viewSearch())
	case ScreenTodoDetail:
		b.WriteString(m.viewDetail())
	case ScreenHelp:
		b.WriteString(m.viewHelp())
	case ScreenSettings:
		b.WriteString(m.viewSettings())
	}

	b.WriteString("\n\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

func (m Model) viewHeader() string {
	title := titleStyle.Render("Pali Todo Manager")

	var context string
	switch m.screen {
	case ScreenTodoList:
		completed := 0
		for _, todo := range m.todos {
			if todo.Completed {
				completed++
			}
		}
		pending := len(m.todos) - completed

		parts := []string{fmt.Sprintf("%d pending, %d completed", pending, completed)}
		if m.filters.ShowCompleted {
			parts = append(parts, "showing all")
		} else {
			parts = append(parts, "showing pending")
		}
		if m.filters.Priority != nil {
			parts = append(parts, api.PriorityLabel(*m.filters.Priority)+" priority")
		}
		if m.filters.Query != "" {
			parts = append(parts, fmt.Sprintf("search %q", m.filters.Query))
		}
		context = strings.Join(parts, " · ")
	default:
		context = screenTitle(m.screen)
	}

	return title + "  " + headerStyle.Render(context)
}

func screenTitle(s Screen) string {
	switch s {
	case ScreenAddTodo:
		return "Add New Todo"
	case ScreenEditTodo:
		return "Edit Todo"
	case ScreenSearch:
		return "Search Todos"
	case ScreenTodoDetail:
		return "Todo Details"
	case ScreenHelp:
		return "Help & Keyboard Shortcuts"
	case ScreenSettings:
		return "Configuration"
	default:
		return ""
	}
}

func (m Model) viewStatusLine() string {
	if m.busy {
		return m.spinner.View() + " " + statusReadyStyle.Render("Working...")
	}

	switch m.status.kind {
	case statusError:
		return statusErrorStyle.Render("✗ " + m.status.text)
	case statusSuccess:
		return statusSuccessStyle.Render("✓ " + m.status.text)
	default:
		return statusReadyStyle.Render("Ready")
	}
}

func (m Model) viewList() string {
	if len(m.filtered) == 0 {
		if len(m.todos) == 0 {
			return m.viewEmptyWelcome()
		}
		return m.viewEmptyFiltered()
	}

	var b strings.Builder
	for i, todo := range m.filtered {
		b.WriteString(m.renderTodoLine(i, todo))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderTodoLine(index int, todo api.Todo) string {
	status := "○"
	if todo.Completed {
		status = "✓"
	}

	priority := ""
	switch todo.Priority {
	case api.PriorityLow:
		priority = "!"
	case api.PriorityMedium:
		priority = "!!"
	case api.PriorityHigh:
		priority = "!!!"
	}

	line := fmt.Sprintf("%s [%s] %s %s", status, api.ShortID(todo.ID), todo.Title, priority)

	var dueSuffix string
	if todo.DueDate != nil {
		label, urgency := dates.Relative(*todo.DueDate, time.Now())
		dueSuffix = " " + dueStyle(urgency).Render("[Due: "+label+"]")
	}

	if index == m.selected {
		return selectedStyle.Render("▸ "+line) + dueSuffix
	}

	style := valueStyle
	switch {
	case todo.Completed:
		style = completedStyle
	case todo.Priority == api.PriorityHigh:
		style = highPriorityStyle
	case todo.Priority == api.PriorityLow:
		style = lowPriorityStyle
	}
	return style.Render("  "+line) + dueSuffix
}

func dueStyle(u dates.Urgency) lipgloss.Style {
	switch u {
	case dates.Overdue:
		return overdueStyle
	case dates.Today:
		return todayStyle
	case dates.Tomorrow:
		return tomorrowStyle
	default:
		return upcomingStyle
	}
}

func (m Model) viewEmptyWelcome() string {
	lines := []string{
		titleStyle.Render("Welcome to Pali!"),
		"",
		"Get started with your first todo:",
		"",
		"  Press " + labelStyle.Render("n") + " to add a new todo",
		"  Press " + labelStyle.Render("?") + " for help and keyboard shortcuts",
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewEmptyFiltered() string {
	lines := []string{
		labelStyle.Render("No todos match your current filters"),
		"",
	}
	if !m.filters.ShowCompleted {
		lines = append(lines, "  • showing pending todos only")
	}
	if m.filters.Priority != nil {
		lines = append(lines, "  • priority filter: "+api.PriorityLabel(*m.filters.Priority))
	}
	if m.filters.Query != "" {
		lines = append(lines, fmt.Sprintf("  • search query: %q", m.filters.Query))
	}
	lines = append(lines,
		"",
		hintStyle.Render("f toggles all/pending, 0 clears the priority filter, r reloads"),
	)
	return strings.Join(lines, "\n")
}

func (m Model) viewForm(title string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	fields := []struct {
		field FormField
		value string
	}{
		{FieldTitle, m.form.Title},
		{FieldDescription, m.form.Description},
		{FieldPriority, fmt.Sprintf("%s (1=low 2=medium 3=high)", api.PriorityLabel(m.form.Priority))},
		{FieldDueDate, m.form.DueText},
	}

	for _, f := range fields {
		label := f.field.Label()
		value := f.value

		if f.field == m.form.Field {
			cursor := ""
			if f.field != FieldPriority {
				cursor = "▏"
			}
			b.WriteString(fieldActiveStyle.Render("▸ " + label + ":"))
			b.WriteString(" " + value + cursor)
		} else {
			b.WriteString(fieldInactiveStyle.Render("  " + label + ":"))
			b.WriteString(" " + value)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Due date format: YYYY-MM-DD or YYYY-MM-DD HH:MM:SS (optional)"))
	return b.String()
}

func (m Model) viewSearch() string {
	lines := []string{
		m.searchInput.View(),
		"",
		hintStyle.Render("Search matches titles and descriptions, case-insensitive."),
		hintStyle.Render("An empty search returns to the regular todo list."),
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewDetail() string {
	todo, ok := m.selectedTodo()
	if !ok {
		return hintStyle.Render("Nothing selected")
	}

	row := func(label, value string) string {
		return labelStyle.Render(label+": ") + valueStyle.Render(value)
	}

	status := "Pending"
	if todo.Completed {
		status = "Completed"
	}

	description := todo.Description
	if description == "" {
		description = "(no description)"
	}

	due := "Not set"
	if todo.DueDate != nil {
		label, urgency := dates.Relative(*todo.DueDate, time.Now())
		due = dates.Timestamp(*todo.DueDate)
		switch urgency {
		case dates.Overdue:
			due += " " + overdueStyle.Render("(overdue)")
		case dates.Today, dates.Tomorrow:
			due += " " + todayStyle.Render("("+label+")")
		}
	}

	lines := []string{
		row("ID", todo.ID),
		row("Title", todo.Title),
		row("Description", description),
		row("Status", status),
		row("Priority", api.PriorityLabel(todo.Priority)),
		row("Due Date", due),
		row("Created", dates.Timestamp(todo.CreatedAt)),
		row("Updated", dates.Timestamp(todo.UpdatedAt)),
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewHelp() string {
	section := func(name string) string { return labelStyle.Render(name) }

	lines := []string{
		section("Navigation"),
		"  ↑/k ↓/j     move selection",
		"  q, ctrl+c   quit",
		"",
		section("Todo Management"),
		"  n/a         add new todo",
		"  e           edit selected todo",
		"  enter/space toggle completion",
		"  d           delete selected todo",
		"  v           view todo details",
		"  r           reload todo list",
		"",
		section("Search & Filtering"),
		"  /           search todos",
		"  f           toggle show all/pending",
		"  1/2/3       filter by priority",
		"  0           clear priority filter",
		"",
		section("Other"),
		"  h/?         this help",
		"  s           settings",
		"",
		section("Priority Indicators"),
		"  " + lowPriorityStyle.Render("!") + "    low",
		"  " + valueStyle.Render("!!") + "   medium",
		"  " + highPriorityStyle.Render("!!!") + "  high",
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewSettings() string {
	keyStatus := statusErrorStyle.Render("✗ Not set")
	if m.cfg != nil && m.cfg.HasAPIKey() {
		keyStatus = statusSuccessStyle.Render("✓ Configured")
	}

	endpoint := ""
	if m.cfg != nil {
		endpoint = m.cfg.Endpoint
	}

	lines := []string{
		labelStyle.Render("API Endpoint: ") + valueStyle.Render(endpoint),
		labelStyle.Render("API Key:      ") + keyStatus,
		"",
		hintStyle.Render("Use 'pacli config' to modify settings from the command line."),
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewFooter() string {
	switch {
	case m.mode == ModeEditing:
		return m.help.View(m.editKeys)
	case m.screen == ScreenTodoList:
		return m.help.View(m.listKeys)
	default:
		return m.help.View(m.overlayKeys)
	}
}
