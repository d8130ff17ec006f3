package tasks

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/api"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// CreateCmd returns the tasks create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task on the backend.

Examples:
  # Simple task (human-readable output)
  tablero tasks create --title="Fix quote form"

  # Quiet mode for bash capture
  TASK_ID=$(tablero tasks create --title="Fix quote form" --quiet)

  # Full example with all options
  tablero tasks create \
    --title="Refresh pricing table" \
    --description="Pull the new plan names" \
    --status=todo \
    --priority=high \
    --assignee=robin \
    --tag=content --tag=design \
    --due=2026-03-01`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		panic(err)
	}
	cmd.Flags().String("description", "", "Task description in markdown (use - for stdin)")
	cmd.Flags().String("status", "new", "Initial status")
	cmd.Flags().String("priority", "medium", "Priority: low, medium, high, urgent")
	cmd.Flags().String("assignee", "", "Assignee")
	cmd.Flags().StringSlice("tag", nil, "Tag (repeatable)")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	flags := cmd.Flags()

	title, _ := flags.GetString("title")
	if strings.TrimSpace(title) == "" {
		return formatter.Fail(cli.ExitUsage, "EMPTY_TITLE", fmt.Errorf("--title must not be empty"))
	}

	rawStatus, _ := flags.GetString("status")
	status, err := cli.ParseStatusArg(rawStatus)
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_STATUS", err)
	}

	rawPriority, _ := flags.GetString("priority")
	priority, err := cli.ParsePriorityArg(rawPriority)
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_PRIORITY", err)
	}

	description, _ := flags.GetString("description")
	if description == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return formatter.Fail(cli.ExitError, "STDIN_READ_ERROR", err)
		}
		description = string(data)
	}

	req := api.CreateTaskRequest{
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
	}
	req.AssignedTo, _ = flags.GetString("assignee")
	req.Tags, _ = flags.GetStringSlice("tag")

	if rawDue, _ := flags.GetString("due"); rawDue != "" {
		due, err := time.Parse("2006-01-02", rawDue)
		if err != nil {
			return formatter.Fail(cli.ExitValidation, "INVALID_DUE_DATE", fmt.Errorf("--due must be YYYY-MM-DD: %w", err))
		}
		req.DueDate = &due
	}

	c, err := initCLI(cmd, formatter)
	if err != nil {
		return err
	}

	task, err := c.App.API.CreateTask(cmd.Context(), req)
	if err != nil {
		return backendFailure(formatter, "TASK_CREATE_ERROR", err)
	}

	return formatter.Success(taskResult{
		Task:   *task,
		action: fmt.Sprintf("Task '%s' created in %s (ID: %d)", task.Title, task.Status.Label(), task.ID),
	})
}
