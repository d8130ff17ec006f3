package api

import (
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

// TaskList is the body of GET /api/tasks
type TaskList struct {
	Tasks []models.Task `json:"tasks"`
}

// StatusUpdate is the body of PATCH /api/tasks/{id}/status
type StatusUpdate struct {
	Status models.Status `json:"status"`
}

// TitleUpdate is the body of PATCH /api/tasks/{id}
type TitleUpdate struct {
	Title string `json:"title"`
}

// CreateTaskRequest is the body of POST /api/tasks
type CreateTaskRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Status      models.Status   `json:"status,omitempty"`
	Priority    models.Priority `json:"priority"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	AssignedTo  string          `json:"assignedTo,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}
