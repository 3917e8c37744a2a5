package tui

import (
	"strings"

	"github.com/pali/pali-terminal/internal/api"
	"github.com/pali/pali-terminal/internal/dates"
)

// FormField identifies one of the input form's fields. The order here is
// the Tab cycle order.
type FormField int

const (
	FieldTitle FormField = iota
	FieldDescription
	FieldPriority
	FieldDueDate

	fieldCount
)

// Label returns the display name of the field.
func (f FormField) Label() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldDescription:
		return "Description"
	case FieldPriority:
		return "Priority"
	case FieldDueDate:
		return "Due Date"
	default:
		return ""
	}
}

// Form is the editable draft of a todo being created or edited.
//
// Priority always holds a value in 1..3. The due date is kept as a raw
// text buffer until commit, when it is parsed.
type Form struct {
	Title       string
	Description string
	Priority    int
	DueText     string

	// Field is the cursor: which field receives input.
	Field FormField
}

// NewForm returns a form with default values (medium priority, cursor on
// the title field).
func NewForm() Form {
	return Form{Priority: api.PriorityMedium, Field: FieldTitle}
}

// Reset restores all fields to their defaults.
func (f *Form) Reset() {
	*f = NewForm()
}

// LoadTodo pre-populates the form from an existing todo for editing.
func (f *Form) LoadTodo(todo api.Todo) {
	f.Title = todo.Title
	f.Description = todo.Description
	f.Priority = todo.Priority
	if f.Priority < api.PriorityLow || f.Priority > api.PriorityHigh {
		f.Priority = api.PriorityMedium
	}
	if todo.DueDate != nil {
		f.DueText = dates.Timestamp(*todo.DueDate)
	} else {
		f.DueText = ""
	}
	f.Field = FieldTitle
}

// NextField moves the cursor forward, wrapping after the last field.
func (f *Form) NextField() {
	f.Field = (f.Field + 1) % fieldCount
}

// PrevField moves the cursor backward, wrapping before the first field.
func (f *Form) PrevField() {
	f.Field = (f.Field + fieldCount - 1) % fieldCount
}

// InsertRune routes a typed character to the field under the cursor.
//
// The priority field is single-digit driven: '1'..'3' set the value
// directly and every other character is rejected. The due-date buffer
// only accepts the characters its two formats can contain.
func (f *Form) InsertRune(r rune) {
	switch f.Field {
	case FieldTitle:
		f.Title += string(r)
	case FieldDescription:
		f.Description += string(r)
	case FieldPriority:
		if r >= '1' && r <= '3' {
			f.Priority = int(r - '0')
		}
	case FieldDueDate:
		if isDueDateRune(r) {
			f.DueText += string(r)
		}
	}
}

// Backspace removes the last character of the field under the cursor.
// The priority field ignores backspace since it always holds a value.
func (f *Form) Backspace() {
	switch f.Field {
	case FieldTitle:
		f.Title = trimLastRune(f.Title)
	case FieldDescription:
		f.Description = trimLastRune(f.Description)
	case FieldDueDate:
		f.DueText = trimLastRune(f.DueText)
	}
}

// Valid reports whether the draft can be committed: the trimmed title
// must be non-empty.
func (f *Form) Valid() bool {
	return strings.TrimSpace(f.Title) != ""
}

// DueDate parses the due-date buffer. nil with no error means no due
// date was entered.
func (f *Form) DueDate() (*int64, error) {
	ts, ok, err := dates.ParseInput(strings.TrimSpace(f.DueText))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &ts, nil
}

func isDueDateRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-' || r == ':' || r == ' '
}

func trimLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}
