package tasks

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// DeleteCmd returns the tasks delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

// deleteResult reports a removed task
type deleteResult struct {
	ID      int  `json:"id"`
	Deleted bool `json:"deleted"`
}

func (r deleteResult) GetID() int { return r.ID }

func (r deleteResult) Human() string {
	return fmt.Sprintf("✓ Task %d deleted", r.ID)
}

func runDelete(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	id, err := taskIDFromArgs(cmd, args)
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "INVALID_TASK_ID", err)
	}

	c, err := initCLI(cmd, formatter)
	if err != nil {
		return err
	}

	if err := c.App.API.DeleteTask(cmd.Context(), id); err != nil {
		return backendFailure(formatter, "TASK_DELETE_ERROR", err)
	}

	return formatter.Success(deleteResult{ID: int(id), Deleted: true})
}
