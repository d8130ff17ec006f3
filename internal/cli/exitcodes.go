package cli

import (
	"errors"
	"net/http"

	"github.com/thenoetrevino/tablero/internal/api"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: backend failures, network errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested task was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Undecodable backend responses or config files.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid status, priority or layout values.
	ExitValidation = 5
)

// CodedError carries the process exit code for a failed command. Reported
// errors have already been written by an OutputFormatter.
type CodedError struct {
	Code     int
	Err      error
	reported bool
}

func (e *CodedError) Error() string {
	if e.Err == nil {
		return "exit status"
	}
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error { return e.Err }

// Exit wraps err with an explicit exit code
func Exit(code int, err error) error {
	return &CodedError{Code: code, Err: err}
}

// Reported reports whether err was already printed to the user
func Reported(err error) bool {
	var exitErr *CodedError
	return errors.As(err, &exitErr) && exitErr.reported
}

// ExitCodeFor maps an error returned by a command to a process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *CodedError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
		return ExitValidation
	}

	switch {
	case errors.Is(err, api.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidPriority),
		errors.Is(err, models.ErrInvalidLayout):
		return ExitValidation
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitDataErr
	default:
		return ExitError
	}
}
