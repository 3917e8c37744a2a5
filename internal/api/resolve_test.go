package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestResolvePartialIDFullUUIDPassthrough(t *testing.T) {
	// A full UUID must never hit the network.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
	}))
	defer server.Close()

	full := "d2fadfdb-5541-4ace-9443-d01cd917a640"
	got, err := ResolvePartialID(newTestClient(server), full)
	if err != nil {
		t.Fatalf("ResolvePartialID() error = %v", err)
	}
	if got != full {
		t.Errorf("got %s, want %s", got, full)
	}
}

func TestResolvePartialIDServerSide(t *testing.T) {
	full := "d2fadfdb-5541-4ace-9443-d01cd917a640"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/todos/resolve/d2fa" {
			t.Errorf("path = %s, want /todos/resolve/d2fa", r.URL.Path)
		}
		okEnvelope(t, w, map[string]string{"id": full})
	}))
	defer server.Close()

	got, err := ResolvePartialID(newTestClient(server), "d2fa")
	if err != nil {
		t.Fatalf("ResolvePartialID() error = %v", err)
	}
	if got != full {
		t.Errorf("got %s, want %s", got, full)
	}
}

// resolveFallbackServer 404s the resolve endpoint and serves the given
// todos from /todos, mimicking a server without prefix resolution.
func resolveFallbackServer(t *testing.T, todos []Todo) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/todos/resolve/"):
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"error":"unknown endpoint"}`))
		case r.URL.Path == "/todos":
			okEnvelope(t, w, todos)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
}

func TestResolvePartialIDClientFallbackSingleMatch(t *testing.T) {
	server := resolveFallbackServer(t, []Todo{
		{ID: "d2fadfdb-5541-4ace-9443-d01cd917a640", Title: "match"},
		{ID: "aabbccdd-0000-4ace-9443-d01cd917a640", Title: "other"},
	})
	defer server.Close()

	got, err := ResolvePartialID(newTestClient(server), "d2fa")
	if err != nil {
		t.Fatalf("ResolvePartialID() error = %v", err)
	}
	if got != "d2fadfdb-5541-4ace-9443-d01cd917a640" {
		t.Errorf("got %s", got)
	}
}

func TestResolvePartialIDNoMatch(t *testing.T) {
	server := resolveFallbackServer(t, []Todo{
		{ID: "aabbccdd-0000-4ace-9443-d01cd917a640", Title: "other"},
	})
	defer server.Close()

	_, err := ResolvePartialID(newTestClient(server), "d2fa")
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false, want true", err)
	}
}

func TestResolvePartialIDAmbiguous(t *testing.T) {
	var todos []Todo
	for _, suffix := range []string{"1111", "2222", "3333", "4444", "5555", "6666", "7777"} {
		todos = append(todos, Todo{
			ID:    "d2fa0000-0000-4ace-9443-d01cd917" + suffix,
			Title: "todo " + suffix,
		})
	}
	server := resolveFallbackServer(t, todos)
	defer server.Close()

	_, err := ResolvePartialID(newTestClient(server), "d2fa")
	if !IsValidationError(err) {
		t.Fatalf("IsValidationError(%v) = false, want true", err)
	}

	msg := err.Error()
	if !strings.Contains(msg, "matches 7 todos") {
		t.Errorf("error should report the match count: %s", msg)
	}
	if !strings.Contains(msg, "and 2 more") {
		t.Errorf("error should truncate after 5 candidates: %s", msg)
	}
}
