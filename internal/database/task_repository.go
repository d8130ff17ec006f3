package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

// NewTask holds the fields accepted when creating a task
type NewTask struct {
	Title       string
	Description string
	Status      models.Status
	Priority    models.Priority
	DueDate     *time.Time
	AssignedTo  string
	Tags        []string
}

// TaskRepo handles all task-related database operations
type TaskRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewTaskRepo creates a repository over db
func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

const selectTaskColumns = `SELECT id, title, description, status, priority, due_date, assigned_to, created_at, updated_at FROM tasks`

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		task     models.Task
		id       int
		status   string
		priority string
		due      sql.NullTime
	)
	if err := row.Scan(&id, &task.Title, &task.Description, &status, &priority, &due,
		&task.AssignedTo, &task.CreatedAt, &task.UpdatedAt); err != nil {
		return models.Task{}, err
	}

	task.ID = models.TaskID(id)

	var err error
	if task.Status, err = models.ParseStatus(status); err != nil {
		return models.Task{}, err
	}
	if task.Priority, err = models.ParsePriority(priority); err != nil {
		return models.Task{}, err
	}
	if due.Valid {
		d := due.Time
		task.DueDate = &d
	}
	return task, nil
}

// ListTasks returns every task ordered by id, tags included
func (r *TaskRepo) ListTasks(ctx context.Context) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTaskColumns+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	index := make(map[models.TaskID]int)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		index[task.ID] = len(tasks)
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tags, err := r.db.QueryContext(ctx, `SELECT task_id, tag FROM task_tags ORDER BY task_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer tags.Close()

	for tags.Next() {
		var (
			taskID int
			tag    string
		)
		if err := tags.Scan(&taskID, &tag); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		if i, ok := index[models.TaskID(taskID)]; ok {
			tasks[i].Tags = append(tasks[i].Tags, tag)
		}
	}
	if err := tags.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// GetTask returns one task, or ErrTaskNotFound
func (r *TaskRepo) GetTask(ctx context.Context, id models.TaskID) (*models.Task, error) {
	task, err := scanTask(r.db.QueryRowContext(ctx, selectTaskColumns+` WHERE id = ?`, int(id)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}

	tags, err := r.tagsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	task.Tags = tags
	return &task, nil
}

func (r *TaskRepo) tagsFor(ctx context.Context, id models.TaskID) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT tag FROM task_tags WHERE task_id = ? ORDER BY position`, int(id))
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// CountTasks returns the number of stored tasks
func (r *TaskRepo) CountTasks(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return count, nil
}

// CreateTask inserts a task and its tags in one transaction
func (r *TaskRepo) CreateTask(ctx context.Context, in NewTask) (*models.Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if in.Status == "" {
		in.Status = models.StatusNew
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, in.Status)
	}
	if in.Priority == "" {
		in.Priority = models.DefaultPriority
	}
	if !in.Priority.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidPriority, in.Priority)
	}

	now := r.now()
	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (title, description, status, priority, due_date, assigned_to, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			in.Title, in.Description, string(in.Status), string(in.Priority),
			nullableTime(in.DueDate), in.AssignedTo, now, now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert task: %w", err)
		}

		id, err = result.LastInsertId()
		if err != nil {
			return err
		}

		for pos, tag := range in.Tags {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO task_tags (task_id, tag, position) VALUES (?, ?, ?)`,
				id, tag, pos,
			); err != nil {
				return fmt.Errorf("failed to insert tag %q: %w", tag, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetTask(ctx, models.TaskID(id))
}

// UpdateTaskStatus sets a task's status and bumps updated_at
func (r *TaskRepo) UpdateTaskStatus(ctx context.Context, id models.TaskID, status models.Status) (*models.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), r.now(), int(id),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	if err := requireOneRow(result, int(id)); err != nil {
		return nil, err
	}
	return r.GetTask(ctx, id)
}

// UpdateTaskTitle renames a task and bumps updated_at
func (r *TaskRepo) UpdateTaskTitle(ctx context.Context, id models.TaskID, title string) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, updated_at = ? WHERE id = ?`,
		title, r.now(), int(id),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update title: %w", err)
	}
	if err := requireOneRow(result, int(id)); err != nil {
		return nil, err
	}
	return r.GetTask(ctx, id)
}

// DeleteTask removes a task; its tags cascade
func (r *TaskRepo) DeleteTask(ctx context.Context, id models.TaskID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, int(id))
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return requireOneRow(result, int(id))
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
