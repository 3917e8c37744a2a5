package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/pali/pali-terminal/internal/api"
	"github.com/pali/pali-terminal/internal/config"
	"github.com/pali/pali-terminal/internal/logging"
)

// spinnerFrames animate the busy indicator. One frame advance per tick.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// tickInterval drives the spinner while a remote operation is
// outstanding.
const tickInterval = 250 * time.Millisecond

// Model owns all mutable application state. The renderer (View) reads
// it and never writes; remote results are folded in via applyResult.
type Model struct {
	svc Service
	cfg *config.Config

	screen Screen
	mode   InputMode

	// todos is the full collection in server order; filtered is derived
	// from it by applyFilters and never mutated independently.
	todos    []api.Todo
	filtered []api.Todo
	selected int
	filters  Filters

	form Form
	// editingID is the todo being edited while on the Edit screen.
	editingID string

	searchInput textinput.Model

	busy    bool
	spinner spinner.Model
	status  statusMessage

	listKeys    listKeyMap
	editKeys    editKeyMap
	overlayKeys overlayKeyMap
	help        help.Model

	width  int
	height int
}

// New creates the application model. The initial load is dispatched
// from Init.
func New(svc Service, cfg *config.Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Spinner{Frames: spinnerFrames, FPS: tickInterval}
	sp.Style = spinnerStyle

	si := textinput.New()
	si.Placeholder = "type to search titles and descriptions"
	si.Prompt = "/ "
	si.CharLimit = 128

	return Model{
		svc:         svc,
		cfg:         cfg,
		screen:      ScreenTodoList,
		mode:        ModeNormal,
		selected:    noSelection,
		form:        NewForm(),
		searchInput: si,
		busy:        true,
		spinner:     sp,
		listKeys:    newListKeyMap(),
		editKeys:    newEditKeyMap(),
		overlayKeys: newOverlayKeyMap(),
		help:        help.New(),
	}
}

// Run starts the interactive application against the given service.
func Run(svc Service, cfg *config.Config) error {
	program := tea.NewProgram(New(svc, cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadTodosCmd())
}

// Update implements tea.Model. This is the only writer of model state:
// local edits happen synchronously on key messages, remote results on
// their result messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			// Stale tick from a finished operation; let the chain die.
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case todosLoadedMsg, searchDoneMsg, todoCreatedMsg, todoUpdatedMsg,
		todoToggledMsg, todoDeletedMsg, opFailedMsg:
		m.applyResult(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.busy {
			// One operation in flight at a time: key input is dropped
			// until the result message lands.
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a key event by (mode, screen). Anything not
// explicitly mapped is a no-op.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeEditing {
		switch m.screen {
		case ScreenAddTodo, ScreenEditTodo:
			return m.handleFormKey(msg)
		case ScreenSearch:
			return m.handleSearchKey(msg)
		}
		return m, nil
	}

	switch m.screen {
	case ScreenTodoList:
		return m.handleListKey(msg)
	case ScreenHelp, ScreenSettings, ScreenTodoDetail:
		if key.Matches(msg, m.overlayKeys.Back) {
			m.screen = ScreenTodoList
			return m, nil
		}
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.listKeys

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		m.selected = prevSelection(m.selected, len(m.filtered))

	case key.Matches(msg, keys.Down):
		m.selected = nextSelection(m.selected, len(m.filtered))

	case key.Matches(msg, keys.Reload):
		return m, m.dispatch(m.loadTodosCmd())

	case key.Matches(msg, keys.Add):
		m.form.Reset()
		m.screen = ScreenAddTodo
		m.mode = ModeEditing
		m.clearStatus()

	case key.Matches(msg, keys.Edit):
		todo, ok := m.selectedTodo()
		if !ok {
			break
		}
		m.form.Reset()
		m.form.LoadTodo(todo)
		m.editingID = todo.ID
		m.screen = ScreenEditTodo
		m.mode = ModeEditing
		m.clearStatus()

	case key.Matches(msg, keys.Delete):
		todo, ok := m.selectedTodo()
		if !ok {
			break
		}
		return m, m.dispatch(m.deleteTodoCmd(todo.ID))

	case key.Matches(msg, keys.Toggle):
		todo, ok := m.selectedTodo()
		if !ok {
			break
		}
		return m, m.dispatch(m.toggleTodoCmd(todo.ID))

	case key.Matches(msg, keys.Detail):
		if _, ok := m.selectedTodo(); ok {
			m.screen = ScreenTodoDetail
		}

	case key.Matches(msg, keys.Search):
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		m.screen = ScreenSearch
		m.mode = ModeEditing
		m.clearStatus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Filter):
		m.filters.ShowCompleted = !m.filters.ShowCompleted
		m.refilter()

	case key.Matches(msg, keys.PrioLow):
		m.setPriorityFilter(api.PriorityLow)

	case key.Matches(msg, keys.PrioMedium):
		m.setPriorityFilter(api.PriorityMedium)

	case key.Matches(msg, keys.PrioHigh):
		m.setPriorityFilter(api.PriorityHigh)

	case key.Matches(msg, keys.PrioClear):
		m.filters.Priority = nil
		m.refilter()

	case key.Matches(msg, keys.Help):
		m.screen = ScreenHelp

	case key.Matches(msg, keys.Settings):
		m.screen = ScreenSettings
	}

	return m, nil
}

// handleFormKey handles Editing-mode input on the Add and Edit screens.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.editKeys.Cancel):
		// Escape unconditionally discards the draft.
		m.form.Reset()
		m.editingID = ""
		m.screen = ScreenTodoList
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.editKeys.Commit):
		return m.commitForm()

	case key.Matches(msg, m.editKeys.NextField):
		m.form.NextField()
		return m, nil

	case key.Matches(msg, m.editKeys.PrevField):
		m.form.PrevField()
		return m, nil
	}

	switch msg.Type {
	case tea.KeyBackspace:
		m.form.Backspace()
	case tea.KeySpace:
		m.form.InsertRune(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.form.InsertRune(r)
		}
	}

	return m, nil
}

// commitForm validates the draft and dispatches create or update.
// Validation failures never reach the network.
func (m Model) commitForm() (tea.Model, tea.Cmd) {
	if !m.form.Valid() {
		m.setError("Title cannot be empty")
		return m, nil
	}

	due, err := m.form.DueDate()
	if err != nil {
		m.setError("Invalid due date, use YYYY-MM-DD or YYYY-MM-DD HH:MM:SS")
		return m, nil
	}

	if m.screen == ScreenAddTodo {
		priority := m.form.Priority
		req := api.CreateTodoRequest{
			Title:       m.form.Title,
			Description: m.form.Description,
			Priority:    &priority,
			DueDate:     due,
		}
		return m, m.dispatch(m.createTodoCmd(req))
	}

	title := m.form.Title
	description := m.form.Description
	priority := m.form.Priority
	req := api.UpdateTodoRequest{
		Title:       &title,
		Description: &description,
		Priority:    &priority,
		DueDate:     due,
	}
	logging.Debug("updating todo", zap.String("id", m.editingID))
	return m, m.dispatch(m.updateTodoCmd(m.editingID, req))
}

// handleSearchKey handles Editing-mode input on the Search screen.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.editKeys.Cancel):
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.screen = ScreenTodoList
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.editKeys.Commit):
		query := m.searchInput.Value()
		m.searchInput.Blur()
		if query == "" {
			// Empty search returns to the regular todo list.
			return m, m.dispatch(m.loadTodosCmd())
		}
		return m, m.dispatch(m.searchTodosCmd(query))
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) setPriorityFilter(priority int) {
	m.filters.Priority = &priority
	m.refilter()
}

// selectedTodo returns the todo under the selection. Acting on an empty
// selection is a structural no-op, not an error.
func (m *Model) selectedTodo() (api.Todo, bool) {
	if m.selected == noSelection || m.selected >= len(m.filtered) {
		return api.Todo{}, false
	}
	return m.filtered[m.selected], true
}

func (m *Model) setError(text string) {
	m.status = statusMessage{kind: statusError, text: text}
}

func (m *Model) setSuccess(text string) {
	m.status = statusMessage{kind: statusSuccess, text: text}
}

func (m *Model) clearStatus() {
	m.status = statusMessage{}
}
