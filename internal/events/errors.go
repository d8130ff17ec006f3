package events

import (
	"errors"
	"os"
	"syscall"
)

// ErrorCode represents hub-related error types.
type ErrorCode int

const (
	ErrSocketNotFound ErrorCode = iota
	ErrSocketPermission
	ErrHubNotRunning
	ErrConnectionRefused
)

// Client state errors
var (
	ErrNotConnected = errors.New("not connected to event hub")
	ErrQueueFull    = errors.New("event queue full")
	ErrClosed       = errors.New("event client closed")
)

// HubError represents a structured hub error with context.
type HubError struct {
	Code    ErrorCode
	Message string
	Hint    string
	Err     error
}

// Error implements the error interface.
func (e *HubError) Error() string {
	if e.Hint != "" {
		return e.Message + ". " + e.Hint
	}
	return e.Message
}

func (e *HubError) Unwrap() error { return e.Err }

// ClassifyDaemonError maps common dial errors to structured HubError types.
func ClassifyDaemonError(err error) *HubError {
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return &HubError{
			Code:    ErrSocketNotFound,
			Message: "Socket file not found",
			Hint:    "Start the hub: tablero serve",
			Err:     err,
		}
	}

	if errors.Is(err, os.ErrPermission) {
		return &HubError{
			Code:    ErrSocketPermission,
			Message: "Permission denied",
			Hint:    "Check ~/.tablero/ permissions: chmod 700 ~/.tablero/",
			Err:     err,
		}
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno == syscall.ECONNREFUSED {
		return &HubError{
			Code:    ErrConnectionRefused,
			Message: "Connection refused",
			Hint:    "The hub may have crashed. Restart: tablero serve",
			Err:     err,
		}
	}

	return &HubError{
		Code:    ErrHubNotRunning,
		Message: "Event hub not running",
		Hint:    "Start the hub: tablero serve",
		Err:     err,
	}
}
