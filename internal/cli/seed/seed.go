// Package seed fills a backend with generated sample tasks.
package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/api"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/mockdata"
	"github.com/thenoetrevino/tablero/internal/models"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the backend with sample tasks",
		Long: `Create generated sample tasks on the backend. The same --seed always
produces the same tasks.

Examples:
  tablero seed
  tablero seed --count 50 --seed 7
  tablero seed --reset`,
		Args: cobra.NoArgs,
		RunE: runSeed,
	}

	cmd.Flags().Int("count", app.DefaultMockTasks, "Number of tasks to create")
	cmd.Flags().Uint64("seed", 1, "Generator seed")
	cmd.Flags().Bool("reset", false, "Delete every existing task first")
	cli.AddOutputFlags(cmd)

	return cmd
}

// Result summarises a seeding run
type Result struct {
	Deleted int             `json:"deleted"`
	Created []models.TaskID `json:"created"`
}

func (r Result) Human() string {
	msg := fmt.Sprintf("✓ Created %d tasks", len(r.Created))
	if r.Deleted > 0 {
		msg += fmt.Sprintf(" (deleted %d existing)", r.Deleted)
	}
	return msg
}

// Backend is the part of the API client seeding needs
type Backend interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, req api.CreateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id models.TaskID) error
}

// Seed creates count generated tasks, optionally clearing the backend first
func Seed(ctx context.Context, b Backend, count int, seed uint64, reset bool) (Result, error) {
	result := Result{Created: []models.TaskID{}}

	if reset {
		existing, err := b.ListTasks(ctx)
		if err != nil {
			return result, fmt.Errorf("failed to list existing tasks: %w", err)
		}
		for _, t := range existing {
			if err := b.DeleteTask(ctx, t.ID); err != nil {
				return result, fmt.Errorf("failed to delete task %d: %w", t.ID, err)
			}
			result.Deleted++
		}
	}

	for _, t := range mockdata.Generate(count, seed) {
		created, err := b.CreateTask(ctx, api.CreateTaskRequest{
			Title:       t.Title,
			Description: t.Description,
			Status:      t.Status,
			Priority:    t.Priority,
			DueDate:     t.DueDate,
			AssignedTo:  t.AssignedTo,
			Tags:        t.Tags,
		})
		if err != nil {
			return result, fmt.Errorf("failed to create %q: %w", t.Title, err)
		}
		result.Created = append(result.Created, created.ID)
	}
	return result, nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 {
		return formatter.Fail(cli.ExitUsage, "INVALID_COUNT", fmt.Errorf("--count must be positive, got %d", count))
	}
	seed, _ := cmd.Flags().GetUint64("seed")
	reset, _ := cmd.Flags().GetBool("reset")

	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}

	result, err := Seed(cmd.Context(), c.App.API, count, seed, reset)
	if err != nil {
		return formatter.FailWithSuggestion(cli.ExitCodeFor(err), "SEED_ERROR", err,
			"Is the backend running? Start one with: tablero serve")
	}

	if formatter.Quiet {
		for _, id := range result.Created {
			if _, err := fmt.Fprintf(formatter.Out, "%d\n", id); err != nil {
				return err
			}
		}
		return nil
	}
	return formatter.Success(result)
}
