package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind categorizes errors from the Pali server or the transport.
type ErrorKind int

const (
	// KindNetwork indicates a transport-level failure (connection
	// refused, timeout, DNS).
	KindNetwork ErrorKind = iota
	// KindAuth indicates the API key was missing, invalid, or lacked
	// the required privileges.
	KindAuth
	// KindNotFound indicates the requested resource does not exist.
	KindNotFound
	// KindServer indicates the server returned an error response.
	KindServer
	// KindParse indicates the response body could not be decoded.
	KindParse
	// KindValidation indicates the request was rejected before being
	// sent (or a lookup was ambiguous).
	KindValidation
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network error"
	case KindAuth:
		return "authentication error"
	case KindNotFound:
		return "not found"
	case KindServer:
		return "server error"
	case KindParse:
		return "parse error"
	case KindValidation:
		return "validation error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Error is the error type returned by every Client operation.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int // HTTP status code, if applicable
	Err        error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

func newNetworkError(message string, err error) *Error {
	return &Error{Kind: KindNetwork, Message: message, Err: err}
}

func newParseError(message string, err error) *Error {
	return &Error{Kind: KindParse, Message: message, Err: err}
}

// newStatusError classifies a non-success HTTP status into an error kind.
func newStatusError(statusCode int, message string) *Error {
	kind := KindServer
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindAuth
	case http.StatusNotFound:
		kind = KindNotFound
	}
	return &Error{Kind: kind, Message: message, StatusCode: statusCode}
}

// NewValidationError creates an error for requests rejected client-side.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func kindIs(err error, kind ErrorKind) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}

// IsNotFound reports whether err means the resource does not exist.
// Not-found is a distinct outcome from other server errors.
func IsNotFound(err error) bool {
	return kindIs(err, KindNotFound)
}

// IsAuthError reports whether err is an authentication failure.
func IsAuthError(err error) bool {
	return kindIs(err, KindAuth)
}

// IsNetworkError reports whether err is a transport-level failure.
func IsNetworkError(err error) bool {
	return kindIs(err, KindNetwork)
}

// IsValidationError reports whether err was raised before any request
// was sent.
func IsValidationError(err error) bool {
	return kindIs(err, KindValidation)
}
