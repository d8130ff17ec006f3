package board

import "github.com/thenoetrevino/tablero/internal/models"

// DropTarget is what was under the pointer when a drag gesture ended
type DropTarget struct {
	status models.Status
	ok     bool
}

// NoTarget is a drop outside every column
func NoTarget() DropTarget {
	return DropTarget{}
}

// OnColumn is a drop onto the column for s
func OnColumn(s models.Status) DropTarget {
	return DropTarget{status: s, ok: true}
}

// Column returns the targeted status and whether a column was hit
func (t DropTarget) Column() (models.Status, bool) {
	return t.status, t.ok
}

// DropOutcome classifies how a drag gesture resolved
type DropOutcome int

const (
	// DropCancelled means no valid column was under the pointer
	DropCancelled DropOutcome = iota
	// DropTaskMissing means the dragged task is no longer in the collection
	DropTaskMissing
	// DropSameColumn means the task already had the target status
	DropSameColumn
	// DropMoved means the task changed status
	DropMoved
)

func (o DropOutcome) String() string {
	switch o {
	case DropCancelled:
		return "cancelled"
	case DropTaskMissing:
		return "task_missing"
	case DropSameColumn:
		return "same_column"
	case DropMoved:
		return "moved"
	default:
		return "unknown"
	}
}

// Drop is the semantic result of one drag gesture
type Drop struct {
	Outcome DropOutcome
	TaskID  models.TaskID
	From    models.Status
	To      models.Status
}

// Changed reports whether the drop changed a task's status
func (d Drop) Changed() bool {
	return d.Outcome == DropMoved
}

// Drag tracks the single in-flight drag gesture.
// The active marker exists only for preview rendering and never affects data.
type Drag struct {
	active   models.TaskID
	dragging bool
}

// Start records id as the active task, replacing any previous marker
func (d *Drag) Start(id models.TaskID) {
	d.active = id
	d.dragging = true
}

// Active returns the dragged task id, if a gesture is in flight
func (d *Drag) Active() (models.TaskID, bool) {
	return d.active, d.dragging
}

// End resolves the gesture against the current collection and clears the
// active marker whatever the outcome. lookup finds a task by id; targets
// reports whether a status is a valid drop column.
func (d *Drag) End(target DropTarget, lookup func(models.TaskID) (models.Task, bool), targets func(models.Status) bool) Drop {
	id, dragging := d.active, d.dragging
	d.active, d.dragging = 0, false

	if !dragging {
		return Drop{Outcome: DropCancelled}
	}

	to, ok := target.Column()
	if !ok || !targets(to) {
		return Drop{Outcome: DropCancelled, TaskID: id}
	}

	task, found := lookup(id)
	if !found {
		return Drop{Outcome: DropTaskMissing, TaskID: id, To: to}
	}

	if task.Status == to {
		return Drop{Outcome: DropSameColumn, TaskID: id, From: task.Status, To: to}
	}

	return Drop{Outcome: DropMoved, TaskID: id, From: task.Status, To: to}
}
