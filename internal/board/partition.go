// Package board holds the task board core: the status partition, the drag
// interaction controller and the optimistic commit store.
package board

import (
	"slices"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Columns is the partition of a task collection into status buckets.
// Every task is in exactly one place: the bucket for its status, or Hidden
// when the layout has no column for it.
type Columns struct {
	order   []models.Status
	buckets map[models.Status][]models.Task
	hidden  []models.Task
}

// Partition groups tasks into one bucket per layout column.
// Relative order within a bucket matches the source collection.
func Partition(tasks []models.Task, layout models.Layout) Columns {
	c := Columns{
		order:   slices.Clone(layout.Statuses),
		buckets: make(map[models.Status][]models.Task, len(layout.Statuses)),
	}
	for _, s := range c.order {
		c.buckets[s] = []models.Task{}
	}

	for _, task := range tasks {
		bucket, ok := c.buckets[task.Status]
		if !ok {
			c.hidden = append(c.hidden, task)
			continue
		}
		c.buckets[task.Status] = append(bucket, task)
	}

	return c
}

// Order returns the drop targets in layout order
func (c Columns) Order() []models.Status {
	return slices.Clone(c.order)
}

// Bucket returns a copy of one column's tasks, or nil if the layout has no such column
func (c Columns) Bucket(s models.Status) []models.Task {
	return models.CloneTasks(c.buckets[s])
}

// Has reports whether s is a drop target of this partition
func (c Columns) Has(s models.Status) bool {
	_, ok := c.buckets[s]
	return ok
}

// Hidden returns a copy of the tasks whose status has no column in the layout
func (c Columns) Hidden() []models.Task {
	return models.CloneTasks(c.hidden)
}

// BucketLen returns the number of tasks in one column
func (c Columns) BucketLen(s models.Status) int {
	return len(c.buckets[s])
}

// HiddenLen returns the number of tasks outside the layout
func (c Columns) HiddenLen() int {
	return len(c.hidden)
}

// Len returns the number of tasks placed in columns
func (c Columns) Len() int {
	total := 0
	for _, bucket := range c.buckets {
		total += len(bucket)
	}
	return total
}

// IndexOf returns the column index of s, or -1
func (c Columns) IndexOf(s models.Status) int {
	return slices.Index(c.order, s)
}

// Equal reports whether both partitions have the same columns holding the
// same task ids and statuses in the same order
func (c Columns) Equal(other Columns) bool {
	if !slices.Equal(c.order, other.order) {
		return false
	}
	for _, s := range c.order {
		if !sameTasks(c.buckets[s], other.buckets[s]) {
			return false
		}
	}
	return sameTasks(c.hidden, other.hidden)
}

func sameTasks(a, b []models.Task) bool {
	return slices.EqualFunc(a, b, func(x, y models.Task) bool {
		return x.ID == y.ID && x.Status == y.Status
	})
}
