package models

import (
	"fmt"
	"slices"
	"time"
)

// TaskID identifies a unique task within a board
type TaskID int

// Task represents a single card on the board.
// Status is the only field that drives partitioning; everything else is display payload.
type Task struct {
	ID          TaskID     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	AssignedTo  string     `json:"assignedTo,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Clone returns a deep copy of the task, so the copy shares no slices or pointers
func (t Task) Clone() Task {
	out := t
	if t.DueDate != nil {
		due := *t.DueDate
		out.DueDate = &due
	}
	out.Tags = slices.Clone(t.Tags)
	return out
}

// WithStatus returns a copy of the task carrying the given status
func (t Task) WithStatus(s Status) Task {
	out := t.Clone()
	out.Status = s
	return out
}

// Validate checks the fields a board depends on. A missing or null status
// decodes to the zero Status without error, so it is caught here.
func (t Task) Validate() error {
	if !t.Status.Valid() {
		return fmt.Errorf("task %d: %w: %q", t.ID, ErrInvalidStatus, string(t.Status))
	}
	return nil
}

// ValidateTasks checks every task and rejects repeated ids
func ValidateTasks(tasks []Task) error {
	seen := make(map[TaskID]struct{}, len(tasks))
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return err
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateTaskID, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}

// Overdue reports whether the task has a due date before now and is not done
func (t Task) Overdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusDone {
		return false
	}
	return t.DueDate.Before(now)
}

// CloneTasks deep-copies a task collection, preserving order
func CloneTasks(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
