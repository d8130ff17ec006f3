// Package mockdata generates sample tasks for offline use and seeding.
package mockdata

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

var (
	verbs    = []string{"Review", "Draft", "Publish", "Migrate", "Audit", "Refresh", "Archive", "Translate"}
	subjects = []string{"landing page", "pricing table", "press release", "quote form", "file manager", "chat inbox", "help article", "team bios"}
	people   = []string{"alex", "sam", "robin", "jordan", "casey", ""}
	tagPool  = []string{"content", "design", "backend", "urgent-fix", "seo", "legal"}
)

// Reference is the fixed clock used for generated timestamps so output is reproducible
var Reference = time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

// Generate returns n tasks with ids 1..n. The same seed always yields the same tasks,
// and statuses and priorities cycle so every column is populated once n >= 5.
func Generate(n int, seed uint64) []models.Task {
	if n <= 0 {
		return []models.Task{}
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	statuses := models.AllStatuses()
	priorities := models.AllPriorities()

	tasks := make([]models.Task, n)
	for i := range n {
		created := Reference.Add(time.Duration(i) * time.Hour)
		task := models.Task{
			ID:          models.TaskID(i + 1),
			Title:       fmt.Sprintf("%s %s", verbs[rng.IntN(len(verbs))], subjects[rng.IntN(len(subjects))]),
			Description: fmt.Sprintf("Generated task #%d.\n\n- check copy\n- check links", i+1),
			Status:      statuses[i%len(statuses)],
			Priority:    priorities[rng.IntN(len(priorities))],
			AssignedTo:  people[rng.IntN(len(people))],
			Tags:        pickTags(rng),
			CreatedAt:   created,
			UpdatedAt:   created,
		}
		if rng.IntN(3) > 0 {
			due := created.Add(time.Duration(rng.IntN(21)-7) * 24 * time.Hour)
			task.DueDate = &due
		}
		tasks[i] = task
	}

	return tasks
}

func pickTags(rng *rand.Rand) []string {
	count := rng.IntN(3)
	if count == 0 {
		return nil
	}
	perm := rng.Perm(len(tagPool))
	tags := make([]string, count)
	for i := range count {
		tags[i] = tagPool[perm[i]]
	}
	return tags
}
