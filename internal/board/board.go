package board

import (
	"log/slog"
	"slices"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Board is the exclusively owned cache of the external task collection.
//
// The task slice is never mutated in place: Resync and committed drops
// replace it wholesale, and readers only ever receive copies. A Board is not
// safe for concurrent use; it belongs to the goroutine running the UI loop.
type Board struct {
	layout  models.Layout
	tasks   []models.Task
	columns Columns
	drag    Drag

	notifier      StatusNotifier
	onTaskClick   func(models.Task)
	onEditRequest func(models.Task)
	logger        *slog.Logger
}

// New creates a board for the given layout seeded with tasks
func New(layout models.Layout, tasks []models.Task, opts ...Option) *Board {
	b := &Board{
		layout: layout,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.replace(models.CloneTasks(tasks))
	return b
}

// replace swaps in a new collection and re-derives the partition
func (b *Board) replace(tasks []models.Task) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	b.tasks = tasks
	b.columns = Partition(b.tasks, b.layout)
}

// Resync replaces the cache with a freshly fetched collection, discarding
// any optimistic state not yet reflected upstream
func (b *Board) Resync(tasks []models.Task) {
	b.replace(models.CloneTasks(tasks))
	b.logger.Debug("board resynced", "tasks", len(b.tasks), "hidden", b.columns.HiddenLen())
}

// Layout returns the board's column layout
func (b *Board) Layout() models.Layout {
	return b.layout
}

// Tasks returns a copy of the current collection in source order
func (b *Board) Tasks() []models.Task {
	return models.CloneTasks(b.tasks)
}

// Columns returns the current partition
func (b *Board) Columns() Columns {
	return b.columns
}

// Task looks up a task by id
func (b *Board) Task(id models.TaskID) (models.Task, bool) {
	for _, t := range b.tasks {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return models.Task{}, false
}

// StartDrag marks id as the active task for preview rendering
func (b *Board) StartDrag(id models.TaskID) {
	b.drag.Start(id)
}

// ActiveTask returns the task being dragged, if any and still present
func (b *Board) ActiveTask() (models.Task, bool) {
	id, ok := b.drag.Active()
	if !ok {
		return models.Task{}, false
	}
	return b.Task(id)
}

// Dragging reports whether a drag gesture is in flight
func (b *Board) Dragging() bool {
	_, ok := b.drag.Active()
	return ok
}

// EndDrag finishes the current gesture. A state-changing drop is committed to
// the cache before the notifier hears about it; every other outcome leaves
// the collection untouched.
func (b *Board) EndDrag(target DropTarget) Drop {
	drop := b.drag.End(target, b.lookup, b.columns.Has)
	if drop.Outcome != DropMoved {
		b.logger.Debug("drop ignored", "task_id", drop.TaskID, "outcome", drop.Outcome.String())
		return drop
	}

	b.commit(drop.TaskID, drop.To)
	b.logger.Debug("drop committed",
		"task_id", drop.TaskID,
		"from", drop.From,
		"to", drop.To)

	if b.notifier != nil {
		b.notifier.NotifyStatusChange(drop.TaskID, drop.To)
	}
	return drop
}

func (b *Board) lookup(id models.TaskID) (models.Task, bool) {
	for _, t := range b.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// commit builds a new collection identical to the current one except for
// the status of the first task with a matching id, the one lookup resolved
func (b *Board) commit(id models.TaskID, status models.Status) {
	next := slices.Clone(b.tasks)
	if i := slices.IndexFunc(next, func(t models.Task) bool { return t.ID == id }); i >= 0 {
		next[i] = next[i].WithStatus(status)
	}
	b.replace(next)
}

// Click reports a card activation to the task-click callback
func (b *Board) Click(id models.TaskID) bool {
	task, ok := b.Task(id)
	if !ok || b.onTaskClick == nil {
		return false
	}
	b.onTaskClick(task)
	return true
}

// RequestEdit reports a card's edit action to the edit-request callback
func (b *Board) RequestEdit(id models.TaskID) bool {
	task, ok := b.Task(id)
	if !ok || b.onEditRequest == nil {
		return false
	}
	b.onEditRequest(task)
	return true
}
