package mockdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tablero/internal/models"
)

func TestGenerate_Deterministic(t *testing.T) {
	assert.Equal(t, Generate(20, 7), Generate(20, 7))
	assert.NotEqual(t, Generate(20, 7), Generate(20, 8))
}

func TestGenerate_CoversEveryStatus(t *testing.T) {
	seen := make(map[models.Status]bool)
	for _, task := range Generate(10, 1) {
		seen[task.Status] = true
		assert.True(t, task.Status.Valid())
		assert.True(t, task.Priority.Valid())
		assert.NotEmpty(t, task.Title)
	}
	assert.Len(t, seen, len(models.AllStatuses()))
}

func TestGenerate_UniqueSequentialIDs(t *testing.T) {
	tasks := Generate(12, 3)
	for i, task := range tasks {
		assert.Equal(t, models.TaskID(i+1), task.ID)
	}
}

func TestGenerate_NonPositive(t *testing.T) {
	assert.Empty(t, Generate(0, 1))
	assert.Empty(t, Generate(-3, 1))
}
