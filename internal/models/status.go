package models

import (
	"fmt"
	"strings"
)

// Status is the workflow state of a task, one of the constants below.
// Decoding a value outside that set fails; a plain conversion such as
// Status("archived") does not, so use Valid before trusting one.
type Status string

const (
	StatusNew        Status = "new"
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
)

// allStatuses lists every status in board order
var allStatuses = []Status{
	StatusNew,
	StatusTodo,
	StatusInProgress,
	StatusReview,
	StatusDone,
}

// AllStatuses returns every valid status in board order.
// The returned slice is a copy.
func AllStatuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

// Valid reports whether s is a member of the enumeration
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusTodo, StatusInProgress, StatusReview, StatusDone:
		return true
	default:
		return false
	}
}

// Label returns the human-readable column title for the status
func (s Status) Label() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusReview:
		return "Review"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a wire value into a Status.
// Matching is case-insensitive and accepts "-" or " " in place of "_",
// so "In Progress" and "in-progress" both resolve to StatusInProgress.
func ParseStatus(raw string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	s := Status(normalized)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// MarshalText implements encoding.TextMarshaler
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Unknown values are rejected here so they never reach the board partition.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
