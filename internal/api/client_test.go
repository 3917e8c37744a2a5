package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

const testKey = "pk_test_key"

func okEnvelope(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal test data: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"success":true,"data":` + string(raw) + `}`))
}

func newTestClient(server *httptest.Server) *Client {
	return NewClientWithURL(server.URL, testKey)
}

func TestNewClientWithURLTrimsTrailingSlash(t *testing.T) {
	client := NewClientWithURL("http://localhost:8787/", "")

	if client.BaseURL != "http://localhost:8787" {
		t.Errorf("BaseURL = %s, want http://localhost:8787", client.BaseURL)
	}
	if got := client.buildURL("/todos"); got != "http://localhost:8787/todos" {
		t.Errorf("buildURL = %s, want http://localhost:8787/todos", got)
	}
}

func TestCreateTodoSendsAuthAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/todos" {
			t.Errorf("got %s %s, want POST /todos", r.Method, r.URL.Path)
		}
		if got := r.Header.Get(APIKeyHeader); got != testKey {
			t.Errorf("auth header = %q, want %q", got, testKey)
		}

		var req CreateTodoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Title != "buy milk" {
			t.Errorf("title = %q, want %q", req.Title, "buy milk")
		}
		if req.Priority == nil || *req.Priority != PriorityHigh {
			t.Error("priority should be high")
		}

		okEnvelope(t, w, Todo{ID: "abc-123", Title: req.Title, Priority: *req.Priority})
	}))
	defer server.Close()

	p := PriorityHigh
	todo, err := newTestClient(server).CreateTodo(CreateTodoRequest{Title: "buy milk", Priority: &p})
	if err != nil {
		t.Fatalf("CreateTodo() error = %v", err)
	}
	if todo.ID != "abc-123" {
		t.Errorf("ID = %s, want abc-123", todo.ID)
	}
}

func TestListTodosQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("tag") != "work" {
			t.Errorf("tag = %q, want work", q.Get("tag"))
		}
		if q.Get("priority") != "high" {
			t.Errorf("priority = %q, want high", q.Get("priority"))
		}
		okEnvelope(t, w, []Todo{{ID: "a", Title: "one"}, {ID: "b", Title: "two"}})
	}))
	defer server.Close()

	todos, err := newTestClient(server).ListTodos("work", "high")
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("len(todos) = %d, want 2", len(todos))
	}
	if todos[0].ID != "a" || todos[1].ID != "b" {
		t.Error("server order should be preserved")
	}
}

func TestListTodosOmitsEmptyFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("query = %q, want empty", r.URL.RawQuery)
		}
		okEnvelope(t, w, []Todo{})
	}))
	defer server.Close()

	if _, err := newTestClient(server).ListTodos("", ""); err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
}

func TestGetTodoNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"error":"todo not found"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).GetTodo("missing")
	if err == nil {
		t.Fatal("GetTodo() should fail")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false, want true", err)
	}
}

func TestAuthErrorClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"error":"invalid API key"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).ListTodos("", "")
	if !IsAuthError(err) {
		t.Errorf("IsAuthError(%v) = false, want true", err)
	}
}

func TestEnvelopeFailureWithOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"title is required"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).CreateTodo(CreateTodoRequest{})
	if err == nil {
		t.Fatal("CreateTodo() should surface envelope failure")
	}
}

func TestNetworkErrorClassification(t *testing.T) {
	// Port 1 should refuse connections.
	client := NewClientWithURL("http://127.0.0.1:1", "")

	_, err := client.ListTodos("", "")
	if !IsNetworkError(err) {
		t.Errorf("IsNetworkError(%v) = false, want true", err)
	}
}

func TestToggleTodo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/todos/abc/toggle" {
			t.Errorf("got %s %s, want PATCH /todos/abc/toggle", r.Method, r.URL.Path)
		}
		okEnvelope(t, w, Todo{ID: "abc", Title: "t", Completed: true})
	}))
	defer server.Close()

	todo, err := newTestClient(server).ToggleTodo("abc")
	if err != nil {
		t.Fatalf("ToggleTodo() error = %v", err)
	}
	if !todo.Completed {
		t.Error("Completed should be true after toggle")
	}
}

func TestDeleteTodo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/todos/abc" {
			t.Errorf("got %s %s, want DELETE /todos/abc", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"success":true,"data":null}`))
	}))
	defer server.Close()

	if err := newTestClient(server).DeleteTodo("abc"); err != nil {
		t.Fatalf("DeleteTodo() error = %v", err)
	}
}

func TestSearchTodos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/todos/search" {
			t.Errorf("path = %s, want /todos/search", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "milk & eggs" {
			t.Errorf("q = %q, want %q", got, "milk & eggs")
		}
		okEnvelope(t, w, []Todo{{ID: "a", Title: "buy milk & eggs"}})
	}))
	defer server.Close()

	todos, err := newTestClient(server).SearchTodos("milk & eggs")
	if err != nil {
		t.Fatalf("SearchTodos() error = %v", err)
	}
	if len(todos) != 1 {
		t.Errorf("len(todos) = %d, want 1", len(todos))
	}
}

func TestInitializeSendsNoAuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(APIKeyHeader) != "" {
			t.Error("initialize must not send an API key")
		}
		okEnvelope(t, w, map[string]string{"admin_key": "pk_admin"})
	}))
	defer server.Close()

	key, err := newTestClient(server).Initialize()
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if key != "pk_admin" {
		t.Errorf("key = %s, want pk_admin", key)
	}
}

func TestUpdateTodoOmitsNilFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if _, present := raw["title"]; !present {
			t.Error("title should be present")
		}
		for _, field := range []string{"description", "completed", "priority", "due_date"} {
			if _, present := raw[field]; present {
				t.Errorf("field %s should be omitted when nil", field)
			}
		}
		okEnvelope(t, w, Todo{ID: "abc", Title: "renamed"})
	}))
	defer server.Close()

	title := "renamed"
	if _, err := newTestClient(server).UpdateTodo("abc", UpdateTodoRequest{Title: &title}); err != nil {
		t.Fatalf("UpdateTodo() error = %v", err)
	}
}
