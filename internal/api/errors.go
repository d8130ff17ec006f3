package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Client errors
var (
	// ErrNotFound indicates the backend has no record for the requested id
	ErrNotFound = errors.New("not found")

	// ErrInvalidBaseURL indicates the configured backend URL cannot be used
	ErrInvalidBaseURL = errors.New("invalid API base URL")

	// ErrUnavailable indicates the backend could not be reached at all
	ErrUnavailable = errors.New("backend unavailable")
)

// APIError is a non-2xx response from the backend
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, msg)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
