package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pali/pali-terminal/internal/api"
)

// Service is the remote todo-service collaborator the application talks
// to. *api.Client satisfies it; tests substitute an in-memory fake.
type Service interface {
	CreateTodo(req api.CreateTodoRequest) (*api.Todo, error)
	ListTodos(tag, priority string) ([]api.Todo, error)
	UpdateTodo(id string, req api.UpdateTodoRequest) (*api.Todo, error)
	DeleteTodo(id string) error
	ToggleTodo(id string) (*api.Todo, error)
	SearchTodos(query string) ([]api.Todo, error)
}

// Result messages. Each remote operation produces exactly one of these;
// applying it in Update is the only place local state mutates.
type (
	todosLoadedMsg struct {
		todos []api.Todo
	}

	searchDoneMsg struct {
		todos []api.Todo
		query string
	}

	todoCreatedMsg struct {
		todo *api.Todo
	}

	todoUpdatedMsg struct {
		todo *api.Todo
	}

	todoToggledMsg struct {
		todo *api.Todo
	}

	todoDeletedMsg struct {
		id string
	}

	opFailedMsg struct {
		op  string
		err error
	}
)

// dispatch starts a remote operation: busy goes up, stale status
// messages are cleared, and the spinner starts ticking alongside the
// operation command.
func (m *Model) dispatch(cmd tea.Cmd) tea.Cmd {
	m.busy = true
	m.clearStatus()
	return tea.Batch(m.spinner.Tick, cmd)
}

func (m *Model) loadTodosCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		todos, err := svc.ListTodos("", "")
		if err != nil {
			return opFailedMsg{op: "load", err: err}
		}
		return todosLoadedMsg{todos: todos}
	}
}

func (m *Model) searchTodosCmd(query string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		todos, err := svc.SearchTodos(query)
		if err != nil {
			return opFailedMsg{op: "search", err: err}
		}
		return searchDoneMsg{todos: todos, query: query}
	}
}

func (m *Model) createTodoCmd(req api.CreateTodoRequest) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		todo, err := svc.CreateTodo(req)
		if err != nil {
			return opFailedMsg{op: "create", err: err}
		}
		return todoCreatedMsg{todo: todo}
	}
}

func (m *Model) updateTodoCmd(id string, req api.UpdateTodoRequest) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		todo, err := svc.UpdateTodo(id, req)
		if err != nil {
			return opFailedMsg{op: "update", err: err}
		}
		return todoUpdatedMsg{todo: todo}
	}
}

func (m *Model) toggleTodoCmd(id string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		todo, err := svc.ToggleTodo(id)
		if err != nil {
			return opFailedMsg{op: "toggle", err: err}
		}
		return todoToggledMsg{todo: todo}
	}
}

func (m *Model) deleteTodoCmd(id string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		if err := svc.DeleteTodo(id); err != nil {
			return opFailedMsg{op: "delete", err: err}
		}
		return todoDeletedMsg{id: id}
	}
}

// applyResult folds a remote-operation result into the model. The busy
// flag clears here regardless of outcome.
func (m *Model) applyResult(msg tea.Msg) {
	m.busy = false

	switch msg := msg.(type) {
	case todosLoadedMsg:
		m.todos = msg.todos
		m.filters.Query = ""
		m.refilter()
		m.setSuccess(fmt.Sprintf("Loaded %d todos", len(msg.todos)))

	case searchDoneMsg:
		m.todos = msg.todos
		m.filters.Query = msg.query
		m.refilter()
		m.screen = ScreenTodoList
		m.mode = ModeNormal
		if msg.query == "" {
			m.setSuccess(fmt.Sprintf("Loaded %d todos", len(msg.todos)))
		} else {
			m.setSuccess(fmt.Sprintf("Found %d todos matching %q", len(msg.todos), msg.query))
		}

	case todoCreatedMsg:
		m.todos = append(m.todos, *msg.todo)
		m.refilter()
		m.form.Reset()
		m.screen = ScreenTodoList
		m.mode = ModeNormal
		m.setSuccess(fmt.Sprintf("Created %q", msg.todo.Title))

	case todoUpdatedMsg:
		m.patchTodo(*msg.todo)
		m.form.Reset()
		m.screen = ScreenTodoList
		m.mode = ModeNormal
		m.setSuccess(fmt.Sprintf("Updated %q", msg.todo.Title))

	case todoToggledMsg:
		m.patchTodo(*msg.todo)
		if msg.todo.Completed {
			m.setSuccess(fmt.Sprintf("Completed %q", msg.todo.Title))
		} else {
			m.setSuccess(fmt.Sprintf("Reopened %q", msg.todo.Title))
		}

	case todoDeletedMsg:
		m.removeTodo(msg.id)
		m.setSuccess("Deleted todo")

	case opFailedMsg:
		// Local state is left untouched; the error becomes the status
		// message. Remote failures are never fatal and never retried.
		m.setError(fmt.Sprintf("Failed to %s: %s", msg.op, userMessage(msg.err)))
	}
}

// patchTodo replaces the todo with a matching ID in the full collection
// and re-derives the filtered view. The filtered view is never patched
// independently, so the two can't disagree.
func (m *Model) patchTodo(updated api.Todo) {
	for i := range m.todos {
		if m.todos[i].ID == updated.ID {
			m.todos[i] = updated
			break
		}
	}
	m.refilter()
}

// removeTodo deletes the todo with a matching ID from the full
// collection and re-derives the filtered view.
func (m *Model) removeTodo(id string) {
	for i := range m.todos {
		if m.todos[i].ID == id {
			m.todos = append(m.todos[:i], m.todos[i+1:]...)
			break
		}
	}
	m.refilter()
}

// refilter re-derives the filtered view from the full collection and
// clamps the selection. Every mutation of the collection or the filter
// state funnels through here.
func (m *Model) refilter() {
	m.filtered = applyFilters(m.todos, m.filters)
	m.selected = clampSelection(m.selected, len(m.filtered))
}

// userMessage extracts a short, user-facing message from an error.
func userMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
