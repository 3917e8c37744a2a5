package tui

import "github.com/charmbracelet/bubbles/key"

// listKeyMap defines key bindings for the todo list screen (Normal mode).
type listKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Add        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Detail     key.Binding
	Search     key.Binding
	Filter     key.Binding
	Reload     key.Binding
	Help       key.Binding
	Settings   key.Binding
	Quit       key.Binding
	PrioLow    key.Binding
	PrioMedium key.Binding
	PrioHigh   key.Binding
	PrioClear  key.Binding
}

// ShortHelp returns keybindings shown in the footer
func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Search, k.Filter, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Detail},
		{k.Add, k.Edit, k.Delete, k.Reload},
		{k.Search, k.Filter, k.PrioLow, k.PrioClear},
		{k.Help, k.Settings, k.Quit},
	}
}

func newListKeyMap() listKeyMap {
	return listKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "toggle done"),
		),
		Add: key.NewBinding(
			key.WithKeys("n", "a"),
			key.WithHelp("n", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Detail: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "details"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "show all/pending"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("?", "help"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		PrioLow: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1/2/3", "priority filter"),
		),
		PrioMedium: key.NewBinding(
			key.WithKeys("2"),
		),
		PrioHigh: key.NewBinding(
			key.WithKeys("3"),
		),
		PrioClear: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "clear filter"),
		),
	}
}

// editKeyMap defines key bindings common to the Add/Edit/Search screens
// (Editing mode). Printable characters and backspace are routed to the
// form or search buffer directly and have no bindings here.
type editKeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Commit    key.Binding
	Cancel    key.Binding
}

// ShortHelp returns keybindings shown in the footer
func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Commit, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Commit, k.Cancel},
	}
}

func newEditKeyMap() editKeyMap {
	return editKeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev field"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// overlayKeyMap defines key bindings for the Help, Settings, and Detail
// screens, which only support returning to the list.
type overlayKeyMap struct {
	Back key.Binding
}

// ShortHelp returns keybindings shown in the footer
func (k overlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back}
}

// FullHelp returns keybindings for the expanded help view
func (k overlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Back}}
}

func newOverlayKeyMap() overlayKeyMap {
	return overlayKeyMap{
		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "back to todos"),
		),
	}
}
