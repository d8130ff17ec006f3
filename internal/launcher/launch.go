// Package launcher wires the application container into a running board.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/api"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui"
)

// Options tweak how the program is run; tests use them to run headless
type Options struct {
	ProgramOptions []tea.ProgramOption
}

// Deps builds the board's collaborators from the container. The returned
// wait function blocks until every status notification dispatched by the
// board has finished.
func Deps(ctx context.Context, application *app.App) (tui.Deps, func()) {
	logger := application.Logger()

	var notifier *api.AsyncNotifier
	deps := tui.Deps{
		Source: application.Source(),
		Titles: application.API,
		Logger: logger,
		NewNotifier: func(onDone func(models.TaskID, models.Status, error)) board.StatusNotifier {
			notifier = application.NewNotifier(onDone)
			return notifier
		},
	}

	// Connect to the hub for live updates (optional - it may not be running)
	hub, err := application.ConnectEvents(ctx)
	if err != nil {
		var hubErr *events.HubError
		if errors.As(err, &hubErr) {
			logger.Warn("failed to connect to event hub", "message", hubErr.Message, "hint", hubErr.Hint)
		} else {
			logger.Warn("failed to connect to event hub", "error", err)
		}
		logger.Info("continuing without live updates")
	} else {
		deps.Events = hub
	}

	wait := func() {
		if notifier != nil {
			notifier.Wait()
		}
	}
	return deps, wait
}

// Launch runs the board until the user quits or a shutdown signal arrives
func Launch(ctx context.Context, application *app.App, opts Options) error {
	// Create root context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	deps, wait := Deps(ctx, application)

	model := tui.New(ctx, application.Config, deps)
	programOpts := append([]tea.ProgramOption{tea.WithContext(ctx)}, opts.ProgramOptions...)
	p := tea.NewProgram(model, programOpts...)

	_, err := p.Run()

	// Stop the listeners, then let in-flight status updates finish so a
	// drop made just before quitting still reaches the backend
	cancel()
	wait()
	slog.Debug("board closed")

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
