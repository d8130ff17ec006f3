package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/models"
)

type statusChange struct {
	ID     models.TaskID
	Status models.Status
}

// recordingNotifier captures every notification for assertions
type recordingNotifier struct {
	calls []statusChange
}

func (r *recordingNotifier) NotifyStatusChange(id models.TaskID, status models.Status) {
	r.calls = append(r.calls, statusChange{ID: id, Status: status})
}

func twoTasks() []models.Task {
	return []models.Task{
		{ID: 1, Title: "write docs", Status: models.StatusTodo, Tags: []string{"docs"}},
		{ID: 2, Title: "ship", Status: models.StatusDone},
	}
}

// TestEndDrag_CrossColumnMutatesExactlyOneRecord drops task 1 onto in_progress.
func TestEndDrag_CrossColumnMutatesExactlyOneRecord(t *testing.T) {
	n := &recordingNotifier{}
	b := New(models.FullLayout, twoTasks(), WithNotifier(n))

	b.StartDrag(1)
	drop := b.EndDrag(OnColumn(models.StatusInProgress))

	assert.Equal(t, DropMoved, drop.Outcome)
	got := b.Tasks()
	require.Len(t, got, 2)
	assert.Equal(t, models.TaskID(1), got[0].ID)
	assert.Equal(t, models.StatusInProgress, got[0].Status)
	assert.Equal(t, models.TaskID(2), got[1].ID)
	assert.Equal(t, models.StatusDone, got[1].Status)

	assert.Equal(t, []statusChange{{ID: 1, Status: models.StatusInProgress}}, n.calls)
	assert.Equal(t, []models.TaskID{1}, ids(b.Columns().Bucket(models.StatusInProgress)))
	assert.Empty(t, b.Columns().Bucket(models.StatusTodo))
}

// TestEndDrag_SameColumnIsNoop leaves the collection field-for-field identical.
func TestEndDrag_SameColumnIsNoop(t *testing.T) {
	n := &recordingNotifier{}
	b := New(models.FullLayout, twoTasks(), WithNotifier(n))
	before := b.Tasks()

	b.StartDrag(1)
	drop := b.EndDrag(OnColumn(models.StatusTodo))

	assert.Equal(t, DropSameColumn, drop.Outcome)
	assert.Equal(t, before, b.Tasks())
	assert.Empty(t, n.calls)
}

// TestEndDrag_OutsideColumnsIsNoop clears the marker and changes nothing else.
func TestEndDrag_OutsideColumnsIsNoop(t *testing.T) {
	n := &recordingNotifier{}
	b := New(models.FullLayout, twoTasks(), WithNotifier(n))
	before := b.Tasks()

	b.StartDrag(1)
	assert.True(t, b.Dragging())
	drop := b.EndDrag(NoTarget())

	assert.Equal(t, DropCancelled, drop.Outcome)
	assert.False(t, b.Dragging())
	assert.Equal(t, before, b.Tasks())
	assert.Empty(t, n.calls)
}

// TestEndDrag_MissingTaskIsNoop covers a task removed by a resync mid-gesture.
func TestEndDrag_MissingTaskIsNoop(t *testing.T) {
	n := &recordingNotifier{}
	b := New(models.FullLayout, twoTasks(), WithNotifier(n))

	b.StartDrag(1)
	b.Resync([]models.Task{{ID: 2, Status: models.StatusDone}})
	drop := b.EndDrag(OnColumn(models.StatusReview))

	assert.Equal(t, DropTaskMissing, drop.Outcome)
	assert.Len(t, b.Tasks(), 1)
	assert.Empty(t, n.calls)
	assert.False(t, b.Dragging())
}

// TestEndDrag_DuplicateIDMovesOnlyResolvedTask ensures a repeated id still
// changes a single record, the one the drop resolved.
func TestEndDrag_DuplicateIDMovesOnlyResolvedTask(t *testing.T) {
	n := &recordingNotifier{}
	b := New(models.FullLayout, []models.Task{
		{ID: 1, Title: "first", Status: models.StatusTodo},
		{ID: 1, Title: "second", Status: models.StatusDone},
	}, WithNotifier(n))

	b.StartDrag(1)
	drop := b.EndDrag(OnColumn(models.StatusReview))

	assert.Equal(t, DropMoved, drop.Outcome)
	got := b.Tasks()
	require.Len(t, got, 2)
	assert.Equal(t, models.StatusReview, got[0].Status)
	assert.Equal(t, models.StatusDone, got[1].Status)
	assert.Equal(t, []statusChange{{ID: 1, Status: models.StatusReview}}, n.calls)
}

// TestEndDrag_ColumnOutsideLayoutIsCancelled ensures a subset view cannot
// commit a status it has no column for.
func TestEndDrag_ColumnOutsideLayoutIsCancelled(t *testing.T) {
	n := &recordingNotifier{}
	b := New(models.StandardLayout, twoTasks(), WithNotifier(n))

	b.StartDrag(1)
	drop := b.EndDrag(OnColumn(models.StatusNew))

	assert.Equal(t, DropCancelled, drop.Outcome)
	assert.Empty(t, n.calls)
}

// TestEndDrag_NotifiesAfterCommit verifies the notifier observes the already-updated cache.
func TestEndDrag_NotifiesAfterCommit(t *testing.T) {
	var b *Board
	var observed models.Status
	b = New(models.FullLayout, twoTasks(), WithNotifier(NotifierFunc(func(id models.TaskID, _ models.Status) {
		task, _ := b.Task(id)
		observed = task.Status
	})))

	b.StartDrag(1)
	b.EndDrag(OnColumn(models.StatusReview))

	assert.Equal(t, models.StatusReview, observed)
}

// TestEndDrag_ReplacesCollectionWholesale checks the previous snapshot handed
// out to readers is not mutated by a commit.
func TestEndDrag_ReplacesCollectionWholesale(t *testing.T) {
	b := New(models.FullLayout, twoTasks())
	snapshot := b.Columns()

	b.StartDrag(1)
	b.EndDrag(OnColumn(models.StatusDone))

	assert.Equal(t, models.StatusTodo, snapshot.Bucket(models.StatusTodo)[0].Status)
	assert.False(t, snapshot.Equal(b.Columns()))
}

func TestEndDrag_WithoutNotifier(t *testing.T) {
	b := New(models.FullLayout, twoTasks())
	b.StartDrag(2)

	assert.NotPanics(t, func() {
		b.EndDrag(OnColumn(models.StatusTodo))
	})
	task, ok := b.Task(2)
	require.True(t, ok)
	assert.Equal(t, models.StatusTodo, task.Status)
}

// TestResync_ReplacesWholesale discards optimistic state not yet reflected upstream.
func TestResync_ReplacesWholesale(t *testing.T) {
	b := New(models.FullLayout, twoTasks())
	b.StartDrag(1)
	b.EndDrag(OnColumn(models.StatusDone))

	upstream := []models.Task{
		{ID: 1, Status: models.StatusTodo},
		{ID: 3, Status: models.StatusReview},
	}
	b.Resync(upstream)

	assert.Equal(t, []models.TaskID{1, 3}, ids(b.Tasks()))
	task, _ := b.Task(1)
	assert.Equal(t, models.StatusTodo, task.Status)
	_, found := b.Task(2)
	assert.False(t, found)
}

// TestResync_CopiesInput ensures the caller keeps no handle into the cache.
func TestResync_CopiesInput(t *testing.T) {
	src := twoTasks()
	b := New(models.FullLayout, nil)
	b.Resync(src)

	src[0].Status = models.StatusDone
	src[0].Tags[0] = "changed"

	task, _ := b.Task(1)
	assert.Equal(t, models.StatusTodo, task.Status)
	assert.Equal(t, "docs", task.Tags[0])
}

func TestTasks_ReturnsCopy(t *testing.T) {
	b := New(models.FullLayout, twoTasks())
	got := b.Tasks()
	got[0].Status = models.StatusDone

	task, _ := b.Task(1)
	assert.Equal(t, models.StatusTodo, task.Status)
}

func TestActiveTask(t *testing.T) {
	b := New(models.FullLayout, twoTasks())

	_, ok := b.ActiveTask()
	assert.False(t, ok)

	b.StartDrag(2)
	task, ok := b.ActiveTask()
	require.True(t, ok)
	assert.Equal(t, "ship", task.Title)
}

func TestClickAndEditCallbacks(t *testing.T) {
	var clicked, edited []models.TaskID
	b := New(models.FullLayout, twoTasks(),
		WithTaskClick(func(task models.Task) { clicked = append(clicked, task.ID) }),
		WithEditRequest(func(task models.Task) { edited = append(edited, task.ID) }),
	)

	assert.True(t, b.Click(1))
	assert.True(t, b.RequestEdit(2))
	assert.False(t, b.Click(42))

	assert.Equal(t, []models.TaskID{1}, clicked)
	assert.Equal(t, []models.TaskID{2}, edited)
}

func TestClick_WithoutCallback(t *testing.T) {
	b := New(models.FullLayout, twoTasks())
	assert.False(t, b.Click(1))
	assert.False(t, b.RequestEdit(1))
}
