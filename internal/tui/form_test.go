package tui

import (
	"testing"
	"time"

	"github.com/pali/pali-terminal/internal/api"
)

func typeString(f *Form, s string) {
	for _, r := range s {
		f.InsertRune(r)
	}
}

func TestFormValid(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"", false},
		{"   ", false},
		{"\t", false},
		{"a", true},
		{"  padded  ", true},
	}

	for _, tc := range tests {
		f := NewForm()
		f.Title = tc.title
		if got := f.Valid(); got != tc.want {
			t.Errorf("Valid() with title %q = %v, want %v", tc.title, got, tc.want)
		}
	}
}

func TestFormDefaults(t *testing.T) {
	f := NewForm()
	if f.Priority != api.PriorityMedium {
		t.Errorf("default priority = %d, want medium", f.Priority)
	}
	if f.Field != FieldTitle {
		t.Errorf("default field = %v, want title", f.Field)
	}
}

func TestFormFieldCycle(t *testing.T) {
	f := NewForm()
	order := []FormField{FieldDescription, FieldPriority, FieldDueDate, FieldTitle}
	for _, want := range order {
		f.NextField()
		if f.Field != want {
			t.Fatalf("NextField landed on %v, want %v", f.Field, want)
		}
	}

	f.PrevField()
	if f.Field != FieldDueDate {
		t.Errorf("PrevField from title = %v, want due date", f.Field)
	}
}

func TestFormPriorityInput(t *testing.T) {
	f := NewForm()
	f.Field = FieldPriority

	f.InsertRune('3')
	if f.Priority != api.PriorityHigh {
		t.Errorf("priority after '3' = %d, want high", f.Priority)
	}

	// Out-of-range digits and letters are rejected.
	for _, r := range "049xz " {
		f.InsertRune(r)
	}
	if f.Priority != api.PriorityHigh {
		t.Errorf("priority changed by rejected input: %d", f.Priority)
	}

	f.Backspace()
	if f.Priority != api.PriorityHigh {
		t.Errorf("priority cleared by backspace: %d", f.Priority)
	}

	f.InsertRune('1')
	if f.Priority != api.PriorityLow {
		t.Errorf("priority after '1' = %d, want low", f.Priority)
	}
}

func TestFormDueDateCharset(t *testing.T) {
	f := NewForm()
	f.Field = FieldDueDate

	typeString(&f, "2026-01-15 10:30:00")
	if f.DueText != "2026-01-15 10:30:00" {
		t.Errorf("due buffer = %q", f.DueText)
	}

	// Letters never enter the buffer.
	typeString(&f, "abc")
	if f.DueText != "2026-01-15 10:30:00" {
		t.Errorf("due buffer accepted letters: %q", f.DueText)
	}

	f.Backspace()
	if f.DueText != "2026-01-15 10:30:0" {
		t.Errorf("due buffer after backspace = %q", f.DueText)
	}
}

func TestFormDueDateParse(t *testing.T) {
	f := NewForm()

	due, err := f.DueDate()
	if err != nil || due != nil {
		t.Fatalf("empty due buffer: got (%v, %v), want (nil, nil)", due, err)
	}

	f.DueText = "2026-03-01"
	due, err = f.DueDate()
	if err != nil {
		t.Fatalf("date-only buffer: %v", err)
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local).Unix()
	if due == nil || *due != want {
		t.Errorf("date-only due = %v, want %d", due, want)
	}

	f.DueText = "2026-13-99"
	if _, err = f.DueDate(); err == nil {
		t.Error("expected error for nonsense date")
	}
}

func TestFormBackspaceOnEmpty(t *testing.T) {
	f := NewForm()
	f.Backspace()
	if f.Title != "" {
		t.Errorf("backspace on empty title produced %q", f.Title)
	}
}

func TestFormLoadTodo(t *testing.T) {
	due := time.Date(2026, 5, 1, 9, 0, 0, 0, time.Local).Unix()
	todo := api.Todo{
		ID:          "t1",
		Title:       "Review draft",
		Description: "second pass",
		Priority:    api.PriorityHigh,
		DueDate:     &due,
	}

	f := NewForm()
	f.LoadTodo(todo)

	if f.Title != todo.Title || f.Description != todo.Description {
		t.Errorf("loaded form = %+v", f)
	}
	if f.Priority != api.PriorityHigh {
		t.Errorf("loaded priority = %d, want high", f.Priority)
	}
	if f.DueText != "2026-05-01 09:00:00" {
		t.Errorf("loaded due text = %q", f.DueText)
	}
	if f.Field != FieldTitle {
		t.Errorf("loaded cursor = %v, want title", f.Field)
	}

	// Round trip: the pre-filled buffer must parse back to the same
	// timestamp.
	parsed, err := f.DueDate()
	if err != nil || parsed == nil || *parsed != due {
		t.Errorf("due round trip = (%v, %v), want %d", parsed, err, due)
	}
}

func TestFormLoadTodoClampsBadPriority(t *testing.T) {
	f := NewForm()
	f.LoadTodo(api.Todo{Title: "x", Priority: 42})
	if f.Priority != api.PriorityMedium {
		t.Errorf("out-of-range priority loaded as %d, want medium", f.Priority)
	}
}

func TestFormReset(t *testing.T) {
	f := NewForm()
	typeString(&f, "something")
	f.Field = FieldDueDate
	typeString(&f, "2026-01-01")

	f.Reset()

	if f.Title != "" || f.Description != "" || f.DueText != "" {
		t.Errorf("reset left content: %+v", f)
	}
	if f.Priority != api.PriorityMedium || f.Field != FieldTitle {
		t.Errorf("reset defaults wrong: %+v", f)
	}
}
