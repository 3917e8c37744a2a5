// Package tui implements the interactive terminal application for Pali.
//
// The application is a Bubble Tea program built around a single Model
// that owns all mutable state: the todo collection, the derived filtered
// view, the selection, the input form, and the current screen/input mode.
// The renderer (View) reads that state and never writes it.
//
// # Screens and input modes
//
// Exactly one Screen is active at a time. The input mode decides how
// keystrokes are interpreted: Normal mode keys are commands, Editing mode
// keys are text. Only the Add, Edit, and Search screens run in Editing
// mode; every other screen is Normal. Transitions between screens are
// routed explicitly per (screen, mode, key); unmapped keys do nothing.
//
// # Remote operations
//
// Every server call (load, create, update, delete, toggle, search) runs
// as a tea.Cmd and reports back with a result message. While a call is
// outstanding the busy flag is set, a spinner animates on a 250ms tick,
// and key input that would dispatch another operation is ignored, so
// operations are strictly serialized. On success the result message is
// the only place local state mutates: the full collection is patched (or
// replaced, for load/search), the filtered view is re-derived, and the
// selection is clamped. On failure local state is untouched and an error
// status message is shown. The busy flag clears in both cases.
package tui
