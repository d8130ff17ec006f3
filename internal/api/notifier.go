package api

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
)

// AsyncNotifier forwards committed board moves to the backend without
// blocking the caller. The outcome never feeds back into the board: a
// rejected update leaves the local cache diverged until the next resync.
type AsyncNotifier struct {
	updater StatusUpdater
	timeout time.Duration
	logger  *slog.Logger
	onDone  func(id models.TaskID, status models.Status, err error)
	wg      sync.WaitGroup
}

// NewAsyncNotifier creates a notifier that calls updater on its own goroutine.
// onDone, when non-nil, observes each result (for UI toasts and tests).
func NewAsyncNotifier(updater StatusUpdater, timeout time.Duration, logger *slog.Logger, onDone func(models.TaskID, models.Status, error)) *AsyncNotifier {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AsyncNotifier{
		updater: updater,
		timeout: timeout,
		logger:  logger,
		onDone:  onDone,
	}
}

// Compile-time verification that *AsyncNotifier implements board.StatusNotifier
var _ board.StatusNotifier = (*AsyncNotifier)(nil)

// NotifyStatusChange dispatches the update and returns immediately
func (n *AsyncNotifier) NotifyStatusChange(id models.TaskID, status models.Status) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		_, err := n.updater.UpdateTaskStatus(ctx, id, status)
		if err != nil {
			n.logger.Warn("status update rejected, board diverged until next resync",
				"task_id", id,
				"status", status,
				"error", err)
		} else {
			n.logger.Debug("status update persisted", "task_id", id, "status", status)
		}

		if n.onDone != nil {
			n.onDone(id, status, err)
		}
	}()
}

// Wait blocks until every dispatched update has finished
func (n *AsyncNotifier) Wait() {
	n.wg.Wait()
}
