package models

import "errors"

// Domain-specific errors for decoding task records
var (
	// ErrInvalidStatus indicates a status string outside the closed enumeration
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrInvalidPriority indicates a priority string outside the closed enumeration
	ErrInvalidPriority = errors.New("invalid task priority")

	// ErrDuplicateTaskID indicates two records in one collection share an id
	ErrDuplicateTaskID = errors.New("duplicate task id")

	// ErrInvalidLayout indicates an unknown board layout name
	ErrInvalidLayout = errors.New("invalid board layout")
)
