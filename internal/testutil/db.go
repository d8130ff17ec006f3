// Package testutil holds helpers shared by package tests: in-memory
// stores, a running event hub and CLI execution.
package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/mockdata"
	"github.com/thenoetrevino/tablero/internal/models"
)

// SetupTestRepo creates an in-memory database with full schema
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()

	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return database.NewRepository(db)
}

// CreateTestTask inserts a task with the given title and status
func CreateTestTask(t *testing.T, repo database.TaskWriter, title string, status models.Status) *models.Task {
	t.Helper()

	task, err := repo.CreateTask(context.Background(), database.NewTask{Title: title, Status: status})
	if err != nil {
		t.Fatalf("Failed to create task %q: %v", title, err)
	}
	return task
}

// SeedTasks inserts n generated tasks and returns them as stored
func SeedTasks(t *testing.T, repo database.TaskWriter, n int) []models.Task {
	t.Helper()

	stored := make([]models.Task, 0, n)
	for _, task := range mockdata.Generate(n, 1) {
		created, err := repo.CreateTask(context.Background(), database.NewTask{
			Title:       task.Title,
			Description: task.Description,
			Status:      task.Status,
			Priority:    task.Priority,
			DueDate:     task.DueDate,
			AssignedTo:  task.AssignedTo,
			Tags:        task.Tags,
		})
		if err != nil {
			t.Fatalf("Failed to seed task %q: %v", task.Title, err)
		}
		stored = append(stored, *created)
	}
	return stored
}
