package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/models"
)

func TestCreateTask_Defaults(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)

	task, err := repo.CreateTask(context.Background(), NewTask{Title: "Write report"})
	require.NoError(t, err)

	assert.Equal(t, models.TaskID(1), task.ID)
	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, models.StatusNew, task.Status)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Nil(t, task.DueDate)
	assert.Empty(t, task.Tags)
	assert.True(t, task.CreatedAt.Equal(time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)))
}

func TestCreateTask_AllFields(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	due := time.Date(2026, 2, 1, 17, 0, 0, 0, time.UTC)

	task, err := repo.CreateTask(context.Background(), NewTask{
		Title:       "Audit invoices",
		Description: "Q4 only",
		Status:      models.StatusReview,
		Priority:    models.PriorityUrgent,
		DueDate:     &due,
		AssignedTo:  "ana",
		Tags:        []string{"finance", "audit"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Q4 only", task.Description)
	assert.Equal(t, models.StatusReview, task.Status)
	assert.Equal(t, models.PriorityUrgent, task.Priority)
	require.NotNil(t, task.DueDate)
	assert.True(t, task.DueDate.Equal(due))
	assert.Equal(t, "ana", task.AssignedTo)
	assert.Equal(t, []string{"finance", "audit"}, task.Tags)
}

func TestCreateTask_Validation(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateTask(ctx, NewTask{Title: "   "})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = repo.CreateTask(ctx, NewTask{Title: "x", Status: "archived"})
	assert.ErrorIs(t, err, models.ErrInvalidStatus)

	_, err = repo.CreateTask(ctx, NewTask{Title: "x", Priority: "someday"})
	assert.ErrorIs(t, err, models.ErrInvalidPriority)

	count, err := repo.CountTasks(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestListTasks_OrderedByIDWithTags(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateTask(ctx, NewTask{Title: "a", Tags: []string{"x", "y"}})
	require.NoError(t, err)
	createTestTask(t, repo, "b", models.StatusDone)
	_, err = repo.CreateTask(ctx, NewTask{Title: "c", Tags: []string{"z"}})
	require.NoError(t, err)

	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, []string{"a", "b", "c"}, []string{tasks[0].Title, tasks[1].Title, tasks[2].Title})
	assert.Equal(t, []string{"x", "y"}, tasks[0].Tags)
	assert.Nil(t, tasks[1].Tags)
	assert.Equal(t, []string{"z"}, tasks[2].Tags)
}

func TestListTasks_EmptyIsNotNil(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)

	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestGetTask_NotFound(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)

	_, err := repo.GetTask(context.Background(), 42)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestUpdateTaskStatus(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()
	task := createTestTask(t, repo, "Ship it", models.StatusTodo)

	later := time.Date(2026, 1, 6, 10, 0, 0, 0, time.UTC)
	repo.now = fixedClock(later)

	updated, err := repo.UpdateTaskStatus(ctx, task.ID, models.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.Status)
	assert.True(t, updated.UpdatedAt.Equal(later))
	assert.True(t, updated.CreatedAt.Equal(task.CreatedAt))

	_, err = repo.UpdateTaskStatus(ctx, task.ID, "blocked")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)

	_, err = repo.UpdateTaskStatus(ctx, 999, models.StatusDone)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestUpdateTaskTitle(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()
	task := createTestTask(t, repo, "Old", models.StatusTodo)

	updated, err := repo.UpdateTaskTitle(ctx, task.ID, "New")
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, models.StatusTodo, updated.Status)

	_, err = repo.UpdateTaskTitle(ctx, task.ID, "")
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = repo.UpdateTaskTitle(ctx, 999, "x")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTask_CascadesTags(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()

	task, err := repo.CreateTask(ctx, NewTask{Title: "tagged", Tags: []string{"a", "b"}})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteTask(ctx, task.ID))

	var tagCount int
	require.NoError(t, repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM task_tags`).Scan(&tagCount))
	assert.Zero(t, tagCount)

	assert.ErrorIs(t, repo.DeleteTask(ctx, task.ID), ErrTaskNotFound)
}

func TestSchemaRejectsUnknownStatus(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)

	_, err := repo.db.ExecContext(context.Background(),
		`INSERT INTO tasks (title, status) VALUES ('bad', 'archived')`)
	assert.Error(t, err, "CHECK constraint should reject unknown status")
}
