package api

import "strings"

// Priority levels for todos. The server stores priority as an ordinal.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

// IDDisplayLength is how many characters of a todo ID are shown in list
// output. Users can pass that prefix back to any id-taking command.
const IDDisplayLength = 8

// Todo is a single task record as returned by the server.
//
// ID is assigned by the server and never changes. DueDate is Unix seconds
// (UTC); nil means no due date. An empty Description means none.
type Todo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
	Priority    int    `json:"priority"`
	DueDate     *int64 `json:"due_date,omitempty"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// CreateTodoRequest is the payload for creating a todo. Priority and
// DueDate are optional; the server fills in defaults.
type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    *int   `json:"priority,omitempty"`
	DueDate     *int64 `json:"due_date,omitempty"`
}

// UpdateTodoRequest is the payload for updating a todo. Every field is
// independently omittable; nil means "leave unchanged".
type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	DueDate     *int64  `json:"due_date,omitempty"`
}

// APIKeyInfo describes an API key as listed by the admin endpoints.
type APIKeyInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Admin     bool   `json:"admin"`
	Active    bool   `json:"active"`
	CreatedAt int64  `json:"created_at"`
}

// GeneratedKey is returned when a new API key is created. The key value
// is only ever returned once.
type GeneratedKey struct {
	Key string `json:"key"`
	ID  string `json:"id"`
}

// ParsePriority maps a priority word to its ordinal. Matching is
// case-insensitive; anything unrecognized defaults to medium.
func ParsePriority(word string) int {
	switch strings.ToLower(word) {
	case "low":
		return PriorityLow
	case "high":
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// PriorityLabel returns the display word for a priority ordinal.
func PriorityLabel(p int) string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityHigh:
		return "high"
	default:
		return "medium"
	}
}

// ShortID returns the display prefix of a todo ID.
func ShortID(id string) string {
	if len(id) > IDDisplayLength {
		return id[:IDDisplayLength]
	}
	return id
}
