package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/models"
)

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: 1, Title: "a", Status: models.StatusTodo},
		{ID: 2, Title: "b", Status: models.StatusDone},
		{ID: 3, Title: "c", Status: models.StatusTodo},
		{ID: 4, Title: "d", Status: models.StatusNew},
		{ID: 5, Title: "e", Status: models.StatusInProgress},
		{ID: 6, Title: "f", Status: models.StatusReview},
		{ID: 7, Title: "g", Status: models.StatusTodo},
	}
}

func ids(tasks []models.Task) []models.TaskID {
	out := make([]models.TaskID, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

// TestPartition_TotalAndDisjoint checks every task lands in exactly one bucket.
func TestPartition_TotalAndDisjoint(t *testing.T) {
	tasks := sampleTasks()
	cols := Partition(tasks, models.FullLayout)

	seen := make(map[models.TaskID]int)
	for _, s := range cols.Order() {
		for _, task := range cols.Bucket(s) {
			seen[task.ID]++
			assert.Equal(t, s, task.Status, "task %d in wrong bucket", task.ID)
		}
	}

	require.Len(t, seen, len(tasks))
	for id, count := range seen {
		assert.Equal(t, 1, count, "task %d appears %d times", id, count)
	}
	assert.Empty(t, cols.Hidden())
	assert.Equal(t, len(tasks), cols.Len())
}

// TestPartition_PreservesOrder checks buckets keep source order (stable, not resorted).
func TestPartition_PreservesOrder(t *testing.T) {
	cols := Partition(sampleTasks(), models.FullLayout)
	assert.Equal(t, []models.TaskID{1, 3, 7}, ids(cols.Bucket(models.StatusTodo)))
}

// TestPartition_SubsetLayoutHidesOutOfLayoutTasks ensures a view without a
// column for a status still accounts for the task instead of dropping it.
func TestPartition_SubsetLayoutHidesOutOfLayoutTasks(t *testing.T) {
	cols := Partition(sampleTasks(), models.StandardLayout)

	assert.Nil(t, cols.Bucket(models.StatusNew))
	assert.False(t, cols.Has(models.StatusNew))
	assert.Equal(t, []models.TaskID{4}, ids(cols.Hidden()))
	assert.Equal(t, 6, cols.Len())
}

// TestPartition_InvalidStatusIsNotDropped covers a status built in code that
// bypassed parsing: it must surface in Hidden, not vanish.
func TestPartition_InvalidStatusIsNotDropped(t *testing.T) {
	tasks := []models.Task{{ID: 1, Status: models.Status("archived")}}
	cols := Partition(tasks, models.FullLayout)

	assert.Equal(t, 0, cols.Len())
	assert.Equal(t, []models.TaskID{1}, ids(cols.Hidden()))
}

func TestPartition_EmptyCollectionHasEmptyBuckets(t *testing.T) {
	cols := Partition(nil, models.FullLayout)

	for _, s := range models.AllStatuses() {
		bucket := cols.Bucket(s)
		assert.NotNil(t, bucket, "bucket %s should be empty, not nil", s)
		assert.Empty(t, bucket)
	}
}

// TestPartition_Idempotent checks recomputing on an unchanged collection is stable.
func TestPartition_Idempotent(t *testing.T) {
	tasks := sampleTasks()
	first := Partition(tasks, models.FullLayout)
	second := Partition(tasks, models.FullLayout)

	assert.True(t, first.Equal(second))
	for _, s := range first.Order() {
		assert.Equal(t, first.Bucket(s), second.Bucket(s))
	}
}

func TestColumnsEqual_DetectsDifferences(t *testing.T) {
	tasks := sampleTasks()
	base := Partition(tasks, models.FullLayout)

	moved := models.CloneTasks(tasks)
	moved[0].Status = models.StatusDone
	assert.False(t, base.Equal(Partition(moved, models.FullLayout)))

	assert.False(t, base.Equal(Partition(tasks, models.StandardLayout)))
}

func TestColumnsOrder_ReturnsCopy(t *testing.T) {
	cols := Partition(nil, models.FullLayout)
	order := cols.Order()
	order[0] = models.StatusDone

	assert.Equal(t, models.StatusNew, cols.Order()[0])
	assert.Equal(t, 2, cols.IndexOf(models.StatusInProgress))
	assert.Equal(t, -1, Partition(nil, models.StandardLayout).IndexOf(models.StatusNew))
}

// TestColumnsBucketAndHidden_ReturnCopies ensures callers cannot write through
// to the board's collection via a partition slice.
func TestColumnsBucketAndHidden_ReturnCopies(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Status: models.StatusTodo, Tags: []string{"a"}},
		{ID: 2, Status: models.StatusNew, Tags: []string{"b"}},
	}
	cols := Partition(tasks, models.StandardLayout)

	bucket := cols.Bucket(models.StatusTodo)
	bucket[0].Title = "changed"
	bucket[0].Tags[0] = "changed"
	hidden := cols.Hidden()
	hidden[0].Tags[0] = "changed"

	assert.Empty(t, cols.Bucket(models.StatusTodo)[0].Title)
	assert.Equal(t, "a", cols.Bucket(models.StatusTodo)[0].Tags[0])
	assert.Equal(t, "b", cols.Hidden()[0].Tags[0])
	assert.Equal(t, "a", tasks[0].Tags[0])
	assert.Equal(t, 1, cols.BucketLen(models.StatusTodo))
	assert.Equal(t, 1, cols.HiddenLen())
	assert.Nil(t, cols.Bucket(models.StatusNew))
}
