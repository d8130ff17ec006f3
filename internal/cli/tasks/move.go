package tasks

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// MoveCmd returns the tasks move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <status>",
		Short: "Move a task to another status column",
		Long: `Move a task to a status column on the backend.

Examples:
  tablero tasks move --id 12 review
  tablero tasks move --id 12 "in progress"`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		panic(err)
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	id, err := cli.GetTaskID(cmd)
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "INVALID_TASK_ID", err)
	}

	status, err := cli.ParseStatusArg(args[0])
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_STATUS", err)
	}

	c, err := initCLI(cmd, formatter)
	if err != nil {
		return err
	}

	current, err := c.App.API.GetTask(cmd.Context(), id)
	if err != nil {
		return backendFailure(formatter, "TASK_NOT_FOUND", err)
	}
	if current.Status == status {
		return formatter.Success(taskResult{
			Task:   *current,
			action: fmt.Sprintf("Task %d is already in %s", id, status.Label()),
		})
	}

	task, err := c.App.API.UpdateTaskStatus(cmd.Context(), id, status)
	if err != nil {
		return backendFailure(formatter, "TASK_MOVE_ERROR", err)
	}
	if task == nil {
		return formatter.Fail(cli.ExitDataErr, "TASK_MOVE_ERROR", errors.New("backend returned no task"))
	}

	return formatter.Success(taskResult{
		Task:   *task,
		action: fmt.Sprintf("Task %d moved from %s to %s", id, current.Status.Label(), task.Status.Label()),
	})
}
