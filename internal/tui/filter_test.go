package tui

import (
	"testing"

	"github.com/pali/pali-terminal/internal/api"
)

func sampleTodos() []api.Todo {
	due := int64(1700000000)
	return []api.Todo{
		{ID: "a1", Title: "Buy groceries", Description: "milk and eggs", Priority: api.PriorityLow},
		{ID: "b2", Title: "Write report", Description: "quarterly numbers", Priority: api.PriorityMedium, DueDate: &due},
		{ID: "c3", Title: "Fix heating", Description: "", Priority: api.PriorityHigh, Completed: true},
		{ID: "d4", Title: "Call plumber", Description: "about the HEATING", Priority: api.PriorityHigh},
	}
}

func TestApplyFiltersDefaultHidesCompleted(t *testing.T) {
	todos := sampleTodos()
	got := applyFilters(todos, Filters{})

	if len(got) != 3 {
		t.Fatalf("expected 3 pending todos, got %d", len(got))
	}
	for _, todo := range got {
		if todo.Completed {
			t.Errorf("completed todo %q leaked through default filters", todo.ID)
		}
	}
}

func TestApplyFiltersShowCompleted(t *testing.T) {
	todos := sampleTodos()
	got := applyFilters(todos, Filters{ShowCompleted: true})

	if len(got) != len(todos) {
		t.Fatalf("expected all %d todos, got %d", len(todos), len(got))
	}
}

func TestApplyFiltersPriority(t *testing.T) {
	todos := []api.Todo{
		{ID: "a", Title: "low", Priority: api.PriorityLow},
		{ID: "b", Title: "medium", Priority: api.PriorityMedium},
		{ID: "c", Title: "high", Priority: api.PriorityHigh},
	}
	high := api.PriorityHigh
	got := applyFilters(todos, Filters{Priority: &high})

	if len(got) != 1 {
		t.Fatalf("expected 1 high-priority todo, got %d", len(got))
	}
	if got[0].ID != "c" {
		t.Errorf("expected todo c, got %q", got[0].ID)
	}
}

func TestApplyFiltersQueryCaseInsensitive(t *testing.T) {
	todos := sampleTodos()
	got := applyFilters(todos, Filters{ShowCompleted: true, Query: "heating"})

	if len(got) != 2 {
		t.Fatalf("expected 2 matches for %q, got %d", "heating", len(got))
	}
	// One matches on title, the other on description.
	if got[0].ID != "c3" || got[1].ID != "d4" {
		t.Errorf("unexpected match set: %q, %q", got[0].ID, got[1].ID)
	}
}

func TestApplyFiltersSoundAndComplete(t *testing.T) {
	todos := sampleTodos()
	high := api.PriorityHigh
	f := Filters{ShowCompleted: true, Priority: &high, Query: "heat"}

	got := applyFilters(todos, f)

	inResult := make(map[string]bool)
	for _, todo := range got {
		inResult[todo.ID] = true
		if !f.matches(todo) {
			t.Errorf("todo %q is in the filtered view but fails the predicate", todo.ID)
		}
	}
	for _, todo := range todos {
		if f.matches(todo) && !inResult[todo.ID] {
			t.Errorf("todo %q passes the predicate but is missing from the view", todo.ID)
		}
	}
}

func TestApplyFiltersPreservesOrder(t *testing.T) {
	todos := sampleTodos()
	got := applyFilters(todos, Filters{ShowCompleted: true})

	for i := 1; i < len(got); i++ {
		if indexOf(todos, got[i-1].ID) > indexOf(todos, got[i].ID) {
			t.Fatalf("filtered view reorders todos: %q before %q", got[i-1].ID, got[i].ID)
		}
	}
}

func indexOf(todos []api.Todo, id string) int {
	for i, todo := range todos {
		if todo.ID == id {
			return i
		}
	}
	return -1
}

func TestFiltersActive(t *testing.T) {
	// The default view already excludes completed todos.
	if !(Filters{}).Active() {
		t.Error("default filters reported inactive")
	}
	if (Filters{ShowCompleted: true}).Active() {
		t.Error("show-everything filters reported active")
	}
	low := api.PriorityLow
	if !(Filters{ShowCompleted: true, Priority: &low}).Active() {
		t.Error("priority filter not reported active")
	}
	if !(Filters{ShowCompleted: true, Query: "x"}).Active() {
		t.Error("query filter not reported active")
	}
}
