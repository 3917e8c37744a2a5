package tui

import (
	"strings"

	"github.com/pali/pali-terminal/internal/api"
)

// Filters is the active filter state for the todo list.
type Filters struct {
	// ShowCompleted includes completed todos in the view.
	ShowCompleted bool

	// Priority limits the view to one priority; nil means no filter.
	Priority *int

	// Query is a case-insensitive substring match against title and
	// description. Empty matches everything.
	Query string
}

// Active reports whether any filter would exclude a todo.
func (f Filters) Active() bool {
	return !f.ShowCompleted || f.Priority != nil || f.Query != ""
}

// matches is the filter predicate for a single todo.
func (f Filters) matches(todo api.Todo) bool {
	if !f.ShowCompleted && todo.Completed {
		return false
	}

	if f.Priority != nil && todo.Priority != *f.Priority {
		return false
	}

	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(todo.Title), q) &&
			!strings.Contains(strings.ToLower(todo.Description), q) {
			return false
		}
	}

	return true
}

// applyFilters derives the visible subset of todos. It is a pure
// function of its inputs: source order is preserved and the input slice
// is never modified.
func applyFilters(todos []api.Todo, f Filters) []api.Todo {
	filtered := make([]api.Todo, 0, len(todos))
	for _, todo := range todos {
		if f.matches(todo) {
			filtered = append(filtered, todo)
		}
	}
	return filtered
}
