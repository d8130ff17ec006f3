package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/launcher"
)

// BoardCmd returns the board command; the root command runs it by default
func BoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive task board",
		Args:  cobra.NoArgs,
		RunE:  runBoard,
	}
}

func runBoard(cmd *cobra.Command, _ []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.Exit(cli.ExitError, err)
	}

	if err := launcher.Launch(cmd.Context(), c.App, launcher.Options{}); err != nil {
		c.App.Logger().Error("board exited with error", "error", err)
		return cli.Exit(cli.ExitError, err)
	}
	return nil
}
