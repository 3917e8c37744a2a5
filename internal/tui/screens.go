package tui

// Screen is the active top-level screen. Exactly one is active at a
// time.
type Screen int

const (
	ScreenTodoList Screen = iota
	ScreenAddTodo
	ScreenEditTodo
	ScreenSearch
	ScreenTodoDetail
	ScreenHelp
	ScreenSettings
)

// String returns the screen name for logging and titles.
func (s Screen) String() string {
	switch s {
	case ScreenTodoList:
		return "todo-list"
	case ScreenAddTodo:
		return "add-todo"
	case ScreenEditTodo:
		return "edit-todo"
	case ScreenSearch:
		return "search"
	case ScreenTodoDetail:
		return "todo-detail"
	case ScreenHelp:
		return "help"
	case ScreenSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// InputMode decides how keystrokes are interpreted. It is orthogonal to
// the screen but constrained: Add/Edit/Search run in Editing mode, every
// other screen runs in Normal mode.
type InputMode int

const (
	// ModeNormal interprets keys as navigation commands.
	ModeNormal InputMode = iota
	// ModeEditing interprets keys as text input.
	ModeEditing
)

// statusKind distinguishes the two message flavors. At most one status
// message is active; a new one replaces the old.
type statusKind int

const (
	statusNone statusKind = iota
	statusSuccess
	statusError
)

type statusMessage struct {
	kind statusKind
	text string
}
