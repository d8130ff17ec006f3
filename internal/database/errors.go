package database

import "errors"

// Repository errors
var (
	// ErrTaskNotFound indicates no row exists for the requested task id
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmptyTitle indicates a create or rename with a blank title
	ErrEmptyTitle = errors.New("task title cannot be empty")
)
