package jellyfin

import (
	"fmt"
	"net/http"
)

// Error represents a Jellyfin API error.
//
// The Error type carries the HTTP status code and any message the
// server returned. It implements error, and provides additional
// methods for retry logic.
type Error struct {
	StatusCode int    // HTTP status code from the server
	Message    string // Error message, if the server provided one
}

// Error returns the error message.
func (e *Error) Error() string {
	return fmt.Sprintf("jellyfin: %d: %s", e.StatusCode, e.Message)
}

// Is checks if the target error is a Jellyfin error with the same status.
//
// This allows errors.Is() to work with *Error types.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// Temporary returns true if the error is temporary and the request
// should be retried.
//
// Server errors (5xx) and 429 Too Many Requests are considered
// temporary. Network errors and timeouts should also be considered
// temporary but are not represented by this type.
func (e *Error) Temporary() bool {
	if e.StatusCode == http.StatusTooManyRequests {
		return true
	}
	return e.StatusCode >= 500
}

// Predefined errors for common cases.
var (
	// ErrUnauthorized matches 401 responses, typically a bad or
	// expired API key.
	ErrUnauthorized = &Error{StatusCode: http.StatusUnauthorized}

	// ErrNotFound matches 404 responses.
	ErrNotFound = &Error{StatusCode: http.StatusNotFound}
)
