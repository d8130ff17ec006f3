package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/models"
)

// setupTestRepo creates an in-memory database and a repository over it
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	require.NoError(t, err, "Failed to create test database")
	t.Cleanup(func() { _ = db.Close() })

	repo := NewRepository(db)
	repo.now = fixedClock(time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC))
	return repo
}

// setupTestDBFile returns a path for a file-backed database in a temp dir
func setupTestDBFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "tablero-test.db")
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// createTestTask inserts a task with the given title and status
func createTestTask(t *testing.T, repo *Repository, title string, status models.Status) *models.Task {
	t.Helper()
	task, err := repo.CreateTask(context.Background(), NewTask{Title: title, Status: status})
	require.NoError(t, err, "Failed to create task %q", title)
	return task
}
