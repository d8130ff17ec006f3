package api

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Source supplies the full task collection the board resyncs from
type Source interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
}

// StatusUpdater persists status changes
type StatusUpdater interface {
	UpdateTaskStatus(ctx context.Context, id models.TaskID, status models.Status) (*models.Task, error)
}

// Compile-time verification that *Client satisfies both roles
var (
	_ Source        = (*Client)(nil)
	_ StatusUpdater = (*Client)(nil)
)

// Snapshot is one load of the collection and where it came from
type Snapshot struct {
	Tasks []models.Task
	// Mock is true when the primary source failed and the fallback answered
	Mock bool
	// Err is the primary source's failure when Mock is true
	Err error
}

// FallbackSource serves mock data when the primary source cannot answer
type FallbackSource struct {
	primary  Source
	fallback func() []models.Task
	logger   *slog.Logger
}

// NewFallbackSource wraps primary. A nil fallback disables the fallback path.
func NewFallbackSource(primary Source, fallback func() []models.Task, logger *slog.Logger) *FallbackSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackSource{primary: primary, fallback: fallback, logger: logger}
}

// Load fetches from the primary source, falling back to mock data on error.
// An error is returned only when there is no fallback.
func (s *FallbackSource) Load(ctx context.Context) (Snapshot, error) {
	tasks, err := s.primary.ListTasks(ctx)
	if err == nil {
		return Snapshot{Tasks: tasks}, nil
	}

	if s.fallback == nil {
		return Snapshot{}, err
	}

	s.logger.Warn("task source unavailable, serving mock data", "error", err)
	return Snapshot{Tasks: s.fallback(), Mock: true, Err: err}, nil
}
