package models

import (
	"fmt"
	"slices"
	"strings"
)

// Layout is the ordered set of status columns a board view shows
type Layout struct {
	Name     string
	Statuses []Status
}

var (
	// FullLayout shows every status, including the triage column
	FullLayout = Layout{
		Name:     "full",
		Statuses: []Status{StatusNew, StatusTodo, StatusInProgress, StatusReview, StatusDone},
	}

	// StandardLayout is the four-column view without triage
	StandardLayout = Layout{
		Name:     "standard",
		Statuses: []Status{StatusTodo, StatusInProgress, StatusReview, StatusDone},
	}
)

// ParseLayout resolves a layout by name
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FullLayout.Name:
		return FullLayout, nil
	case StandardLayout.Name:
		return StandardLayout, nil
	default:
		return Layout{}, fmt.Errorf("%w: %q", ErrInvalidLayout, name)
	}
}

// Contains reports whether the layout has a column for s
func (l Layout) Contains(s Status) bool {
	return slices.Contains(l.Statuses, s)
}

// IndexOf returns the column index of s, or -1
func (l Layout) IndexOf(s Status) int {
	return slices.Index(l.Statuses, s)
}
