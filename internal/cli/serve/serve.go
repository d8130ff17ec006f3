// Package serve runs the development backend: the REST task API over sqlite
// and the change notification hub, in one process.
package serve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/daemon"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/server"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Options configures a backend run
type Options struct {
	Addr       string
	DBPath     string
	SocketPath string
	// FailureRate is the fraction of status updates rejected on purpose
	FailureRate float64
	Logger      *slog.Logger
	// Ready, when set, is called with the bound API address once both
	// listeners are up
	Ready func(addr string)
}

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the development task backend and event hub",
		Long: `Run a task backend on sqlite plus the event hub boards listen to for
live updates.

Examples:
  tablero serve
  tablero serve --addr 127.0.0.1:8080 --db ./tasks.db
  # Reject a third of status updates to watch a board drift and resync
  tablero serve --fail-status-updates 0.33`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (defaults to server.addr from config)")
	cmd.Flags().String("db", "", "Database path, or :memory: (defaults to server.db_path from config)")
	cmd.Flags().String("socket", "", "Event hub socket (defaults to events.socket_path from config)")
	cmd.Flags().Float64("fail-status-updates", 0, "Fraction of status updates to reject with 503 (0-1)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}

	opts := Options{
		Addr:       c.Config.Server.Addr,
		DBPath:     c.Config.Server.DBPath,
		SocketPath: c.Config.Events.SocketPath,
		Logger:     c.App.Logger(),
	}
	if v, _ := cmd.Flags().GetString("addr"); v != "" {
		opts.Addr = v
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		opts.DBPath = v
	}
	if v, _ := cmd.Flags().GetString("socket"); v != "" {
		opts.SocketPath = v
	}
	opts.FailureRate, _ = cmd.Flags().GetFloat64("fail-status-updates")
	if opts.FailureRate < 0 || opts.FailureRate > 1 {
		return formatter.Fail(cli.ExitUsage, "INVALID_FAILURE_RATE",
			fmt.Errorf("--fail-status-updates must be between 0 and 1, got %v", opts.FailureRate))
	}

	out := cmd.OutOrStdout()
	opts.Ready = func(addr string) {
		_, _ = fmt.Fprintf(out, "API listening on http://%s\n", addr)
		_, _ = fmt.Fprintf(out, "Event hub on %s\n", opts.SocketPath)
		if opts.FailureRate > 0 {
			_, _ = fmt.Fprintf(out, "Rejecting %.0f%% of status updates\n", opts.FailureRate*100)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := Run(ctx, opts); err != nil {
		return formatter.Fail(cli.ExitError, "SERVE_ERROR", err)
	}
	return nil
}

// Run serves the API and hub until ctx is cancelled or either fails
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	db, err := database.InitDB(ctx, opts.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	hub, err := daemon.NewServer(opts.SocketPath, daemon.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to start event hub: %w", err)
	}

	handler := server.New(database.NewRepository(db),
		server.WithEvents(hub),
		server.WithHubMetrics(func() any { return hub.Metrics() }),
		server.WithLogger(logger),
		server.WithStatusFailureRate(opts.FailureRate),
	)

	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", opts.Addr)
	if err != nil {
		_ = hub.Shutdown()
		return fmt.Errorf("failed to listen on %s: %w", opts.Addr, err)
	}

	httpServer := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return hub.Start(gctx)
	})

	g.Go(func() error {
		logger.Info("api listening", "addr", ln.Addr().String(), "db", opts.DBPath)
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("api server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("api shutdown: %w", err)
		}
		return nil
	})

	if opts.Ready != nil {
		opts.Ready(ln.Addr().String())
	}

	err = g.Wait()
	logger.Info("backend stopped", "error", err)
	return err
}
