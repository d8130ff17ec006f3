package tasks

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ListCmd returns the tasks list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks grouped by status column",
		Long: `List every task on the backend, partitioned into status columns the
same way the board shows them.

Examples:
  tablero tasks list
  tablero tasks list --status review
  tablero tasks list --layout standard --json
  tablero tasks list --quiet`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("status", "", "Only show one column (new, todo, in_progress, review, done)")
	cmd.Flags().String("layout", "", "Column layout: full or standard (defaults to config)")
	cli.AddOutputFlags(cmd)

	return cmd
}

// columnView is one status bucket in list output
type columnView struct {
	Status models.Status `json:"status"`
	Label  string        `json:"label"`
	Tasks  []models.Task `json:"tasks"`
}

// listResult is the partition as printed by tasks list
type listResult struct {
	Layout  string        `json:"layout"`
	Total   int           `json:"total"`
	Columns []columnView  `json:"columns"`
	Hidden  []models.Task `json:"hidden"`
}

func newListResult(tasks []models.Task, layout models.Layout, only models.Status) listResult {
	cols := board.Partition(tasks, layout)

	result := listResult{
		Layout:  layout.Name,
		Total:   len(tasks),
		Columns: []columnView{},
		Hidden:  cols.Hidden(),
	}
	if result.Hidden == nil {
		result.Hidden = []models.Task{}
	}

	for _, status := range cols.Order() {
		if only != "" && status != only {
			continue
		}
		bucket := cols.Bucket(status)
		if bucket == nil {
			bucket = []models.Task{}
		}
		result.Columns = append(result.Columns, columnView{
			Status: status,
			Label:  status.Label(),
			Tasks:  bucket,
		})
	}
	return result
}

// ids returns task ids in column order
func (r listResult) ids() []models.TaskID {
	var out []models.TaskID
	for _, col := range r.Columns {
		for _, t := range col.Tasks {
			out = append(out, t.ID)
		}
	}
	return out
}

// Human renders the columns as text
func (r listResult) Human() string {
	if r.Total == 0 {
		return "No tasks found"
	}

	var b strings.Builder
	for i, col := range r.Columns {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.RenderColumnHeader(col.Label, len(col.Tasks)))
		b.WriteString("\n")
		for _, t := range col.Tasks {
			b.WriteString("  ")
			b.WriteString(styles.RenderTaskLine(t))
			b.WriteString("\n")
		}
	}
	if n := len(r.Hidden); n > 0 {
		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%d task(s) outside the %s layout", n, r.Layout)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	var only models.Status
	if raw, _ := cmd.Flags().GetString("status"); raw != "" {
		status, err := cli.ParseStatusArg(raw)
		if err != nil {
			return formatter.Fail(cli.ExitValidation, "INVALID_STATUS", err)
		}
		only = status
	}

	c, err := initCLI(cmd, formatter)
	if err != nil {
		return err
	}

	layout := c.Config.Layout()
	if raw, _ := cmd.Flags().GetString("layout"); raw != "" {
		layout, err = models.ParseLayout(raw)
		if err != nil {
			return formatter.Fail(cli.ExitValidation, "INVALID_LAYOUT", err)
		}
	}
	if only != "" && !layout.Contains(only) {
		return formatter.Fail(cli.ExitValidation, "STATUS_NOT_IN_LAYOUT",
			fmt.Errorf("status %s is not a column of the %s layout", only, layout.Name))
	}

	tasks, err := c.App.API.ListTasks(cmd.Context())
	if err != nil {
		return backendFailure(formatter, "TASK_FETCH_ERROR", err)
	}

	result := newListResult(tasks, layout, only)

	if formatter.Quiet {
		for _, id := range result.ids() {
			if _, err := fmt.Fprintf(formatter.Out, "%d\n", id); err != nil {
				return err
			}
		}
		return nil
	}

	return formatter.Success(result)
}
