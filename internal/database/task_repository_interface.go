package database

import (
	"context"

	"github.com/thenoetrevino/tablero/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id models.TaskID) (*models.Task, error)
	CountTasks(ctx context.Context) (int, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	CreateTask(ctx context.Context, in NewTask) (*models.Task, error)
	UpdateTaskStatus(ctx context.Context, id models.TaskID, status models.Status) (*models.Task, error)
	UpdateTaskTitle(ctx context.Context, id models.TaskID, title string) (*models.Task, error)
	DeleteTask(ctx context.Context, id models.TaskID) error
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}

// Compile-time verification that *TaskRepo implements TaskRepository
var _ TaskRepository = (*TaskRepo)(nil)
