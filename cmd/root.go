package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/seed"
	"github.com/thenoetrevino/tablero/internal/cli/serve"
	"github.com/thenoetrevino/tablero/internal/cli/setup"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/cli/tasks"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "tablero",
	Short: "tablero - a terminal task board",
	Long: `tablero is a terminal kanban board for tasks kept on a REST backend.

Run without a subcommand to open the board. Pick a card up with space,
move it with h/l and drop it with space; the change is saved in the
background.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: bootstrap,
	RunE:              runBoard,
}

// Resources opened by bootstrap and released once Execute returns
var (
	current *cli.CLI
	logFile io.Closer
)

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (defaults to $XDG_CONFIG_HOME/tablero/config.yaml)")
	rootCmd.PersistentFlags().String("api-url", "", "Backend base URL, overrides api.base_url")

	rootCmd.AddCommand(BoardCmd())
	rootCmd.AddCommand(tasks.TasksCmd())
	rootCmd.AddCommand(serve.ServeCmd())
	rootCmd.AddCommand(seed.SeedCmd())
	rootCmd.AddCommand(setup.InitCmd())
}

// bootstrap runs before every command: logging, config, styles and the CLI container
func bootstrap(cmd *cobra.Command, _ []string) error {
	if closer, err := logging.Init(); err == nil {
		logFile = closer
	} else {
		// Logging is best effort; the board must still open on a read-only home
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: file logging disabled: %v\n", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return cli.Exit(cli.ExitDataErr, err)
	}
	if v, _ := cmd.Flags().GetString("api-url"); v != "" {
		cfg.API.BaseURL = v
	}

	styles.Init(cfg.ColorScheme)

	c, err := cli.NewCLI(cfg, app.WithLogger(logging.Logger))
	if err != nil {
		return cli.Exit(cli.ExitDataErr, err)
	}
	current = c

	cmd.SetContext(cli.WithCLI(cmd.Context(), c))
	logging.Logger.Debug("command starting", "command", cmd.CommandPath(), "api", cfg.API.BaseURL)
	return nil
}

// loadConfig honours --config, falling back to the default location
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// Execute runs the root command and releases everything bootstrap opened
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext is Execute with a caller-supplied context
func ExecuteContext(ctx context.Context) error {
	defer cleanup()
	return rootCmd.ExecuteContext(ctx)
}

func cleanup() {
	if current != nil {
		if err := current.Close(); err != nil {
			logging.Logger.Warn("failed to close cli", "error", err)
		}
		current = nil
	}
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// exitError prints err unless a formatter already reported it
func exitError(err error) {
	if !cli.Reported(err) {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
	}
}

// Main is the process entry point
func Main() {
	err := Execute()
	if err == nil {
		return
	}
	exitError(err)
	os.Exit(cli.ExitCodeFor(err))
}
