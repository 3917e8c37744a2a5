package api

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pali/pali-terminal/internal/logging"
)

// maxAmbiguousMatches is how many candidates an ambiguous-prefix error
// lists before truncating.
const maxAmbiguousMatches = 5

// ResolvePartialID expands an ID prefix to a full todo ID, so users can
// type the 8-character prefix they see in list output.
//
// Resolution order:
//  1. Full UUIDs pass through untouched.
//  2. Server-side resolution via /todos/resolve/{prefix}.
//  3. Client-side fallback: fetch all todos and scan for prefix matches.
//
// Zero matches and ambiguous prefixes are both errors; the ambiguous
// error lists up to 5 candidates with their titles.
func ResolvePartialID(c *Client, partial string) (string, error) {
	if _, err := uuid.Parse(partial); err == nil {
		return partial, nil
	}

	if full, err := c.ResolveIDPrefix(partial); err == nil {
		return full, nil
	}

	logging.Debug("server-side ID resolution unavailable, scanning client-side",
		zap.String("prefix", partial))

	todos, err := c.ListTodos("", "")
	if err != nil {
		return "", err
	}

	var matches []Todo
	for _, todo := range todos {
		if strings.HasPrefix(todo.ID, partial) {
			matches = append(matches, todo)
		}
	}

	switch len(matches) {
	case 0:
		return "", &Error{
			Kind:    KindNotFound,
			Message: fmt.Sprintf("no todo found with ID starting with %q", partial),
		}
	case 1:
		return matches[0].ID, nil
	default:
		return "", ambiguousIDError(partial, matches)
	}
}

func ambiguousIDError(partial string, matches []Todo) *Error {
	var b strings.Builder
	fmt.Fprintf(&b, "ambiguous ID %q matches %d todos, be more specific:\n", partial, len(matches))

	for i, todo := range matches {
		if i == maxAmbiguousMatches {
			fmt.Fprintf(&b, "  ... and %d more\n", len(matches)-maxAmbiguousMatches)
			break
		}
		// Show enough of each ID to disambiguate.
		preview := todo.ID
		if n := len(partial) + 4; n < len(preview) {
			preview = preview[:n]
		}
		fmt.Fprintf(&b, "  - %s -> %s\n", preview, todo.Title)
	}

	return NewValidationError(strings.TrimRight(b.String(), "\n"))
}
