package api

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
)

type recordingUpdater struct {
	mu    sync.Mutex
	calls []models.TaskID
	err   error
	block chan struct{}
}

func (r *recordingUpdater) UpdateTaskStatus(ctx context.Context, id models.TaskID, status models.Status) (*models.Task, error) {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, id)
	if r.err != nil {
		return nil, r.err
	}
	return &models.Task{ID: id, Status: status}, nil
}

// TestAsyncNotifier_DoesNotBlock verifies the board's commit path returns
// before the backend answers.
func TestAsyncNotifier_DoesNotBlock(t *testing.T) {
	updater := &recordingUpdater{block: make(chan struct{})}
	n := NewAsyncNotifier(updater, time.Second, nil, nil)

	done := make(chan struct{})
	go func() {
		n.NotifyStatusChange(1, models.StatusDone)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("NotifyStatusChange blocked on the updater")
	}

	close(updater.block)
	n.Wait()
	assert.Equal(t, []models.TaskID{1}, updater.calls)
}

// TestAsyncNotifier_FailureDoesNotTouchBoard documents the divergence gap:
// a rejected update leaves the optimistic commit in place.
func TestAsyncNotifier_FailureDoesNotTouchBoard(t *testing.T) {
	rejected := errors.New("409 conflict")
	updater := &recordingUpdater{err: rejected}

	var gotErr error
	var mu sync.Mutex
	n := NewAsyncNotifier(updater, time.Second, nil, func(_ models.TaskID, _ models.Status, err error) {
		mu.Lock()
		gotErr = err
		mu.Unlock()
	})

	b := board.New(models.FullLayout, []models.Task{{ID: 1, Status: models.StatusTodo}}, board.WithNotifier(n))
	b.StartDrag(1)
	b.EndDrag(board.OnColumn(models.StatusDone))
	n.Wait()

	mu.Lock()
	assert.ErrorIs(t, gotErr, rejected)
	mu.Unlock()

	task, _ := b.Task(1)
	assert.Equal(t, models.StatusDone, task.Status)
}
