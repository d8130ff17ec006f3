package tasks

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/markdown"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ShowCmd returns the tasks show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long:  "Display all details of a task, rendering its description as markdown.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

// taskResult wraps a single task for output. JSON output is the task itself.
type taskResult struct {
	models.Task
	action string
}

// GetID satisfies the quiet-mode id extraction of OutputFormatter
func (r taskResult) GetID() int { return int(r.ID) }

func (r taskResult) Human() string {
	if r.action != "" {
		return styles.SuccessStyle.Render("✓") + " " + r.action
	}
	return renderDetail(r.Task)
}

func renderDetail(t models.Task) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(t.Title))
	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Task #%d", t.ID)))
	content.WriteString("\n\n")

	field := func(label, value string) {
		content.WriteString(styles.LabelStyle.Render(label + ": "))
		content.WriteString(value)
		content.WriteString("\n")
	}

	field("Status", styles.ValueStyle.Render(t.Status.Label()))
	field("Priority", styles.RenderPriority(t.Priority))
	if t.AssignedTo != "" {
		field("Assignee", styles.ValueStyle.Render(t.AssignedTo))
	}
	if t.DueDate != nil {
		due := t.DueDate.Format("2006-01-02")
		if t.Overdue(time.Now()) {
			due = styles.ErrorStyle.Render(due + " overdue")
		}
		field("Due", due)
	}
	if len(t.Tags) > 0 {
		field("Tags", styles.RenderTags(t.Tags))
	}

	if t.Description != "" {
		content.WriteString(styles.SectionStyle.Render("Description"))
		content.WriteString("\n")
		content.WriteString(markdown.Render(t.Description, styles.CardWidth-8))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render("Updated " + t.UpdatedAt.Format(time.RFC822)))

	return styles.RenderCard(content.String())
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	id, err := taskIDFromArgs(cmd, args)
	if err != nil {
		return formatter.FailWithSuggestion(cli.ExitUsage, "INVALID_TASK_ID", err,
			"Usage: tablero tasks show <id> or tablero tasks show --id=<id>")
	}

	c, err := initCLI(cmd, formatter)
	if err != nil {
		return err
	}

	task, err := c.App.API.GetTask(cmd.Context(), id)
	if err != nil {
		return backendFailure(formatter, "TASK_NOT_FOUND", err)
	}

	return formatter.Success(taskResult{Task: *task})
}

// taskIDFromArgs reads the id from the first positional argument or --id
func taskIDFromArgs(cmd *cobra.Command, args []string) (models.TaskID, error) {
	if len(args) > 0 {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return 0, fmt.Errorf("task ID must be a positive integer, got %q", args[0])
		}
		return models.TaskID(id), nil
	}
	return cli.GetTaskID(cmd)
}
