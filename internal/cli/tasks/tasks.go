// Package tasks implements the "tablero tasks" command tree.
package tasks

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// TasksCmd returns the tasks parent command
func TasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Inspect and change tasks on the backend",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// initCLI fetches the CLI from the command context, reporting failure
// through the formatter
func initCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, error) {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	return c, nil
}

// backendFailure reports an API error with the exit code it maps to
func backendFailure(formatter *cli.OutputFormatter, code string, err error) error {
	exitCode := cli.ExitCodeFor(err)
	if exitCode == cli.ExitError {
		return formatter.FailWithSuggestion(exitCode, code, err, "Is the backend running? Start one with: tablero serve")
	}
	return formatter.Fail(exitCode, code, err)
}
