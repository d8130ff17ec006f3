// Package app wires configuration, the backend client and the event hub into
// the pieces the board and the CLI consume.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/tablero/internal/api"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/mockdata"
	"github.com/thenoetrevino/tablero/internal/models"
)

// DefaultMockTasks is how many sample tasks the fallback source serves
const DefaultMockTasks = 24

// App is the application container. It owns the backend client and hands
// out sources, notifiers and boards built from the same configuration.
type App struct {
	Config *config.Config
	API    *api.Client

	logger    *slog.Logger
	mockTasks int
	mockSeed  uint64

	events events.EventPublisher
}

// New creates an App from cfg. This is the single entry point for building
// the container; it fails only when the configured base URL is unusable.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	o := appConfig{
		logger:    slog.Default(),
		mockTasks: DefaultMockTasks,
		mockSeed:  1,
	}
	for _, opt := range opts {
		opt(&o)
	}

	clientOpts := []api.ClientOption{
		api.WithToken(cfg.API.Token),
		api.WithTimeout(time.Duration(cfg.API.Timeout)),
		api.WithClientLogger(o.logger),
	}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(o.httpClient))
	}

	client, err := api.NewClient(cfg.API.BaseURL, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}

	return &App{
		Config:    cfg,
		API:       client,
		logger:    o.logger,
		mockTasks: o.mockTasks,
		mockSeed:  o.mockSeed,
		events:    o.events,
	}, nil
}

// Logger returns the container's logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Source returns the task source the board loads from. When mock fallback is
// enabled a failed load is answered with sample data.
func (a *App) Source() *api.FallbackSource {
	var fallback func() []models.Task
	if a.Config.Board.MockFallbackEnabled() {
		n, seed := a.mockTasks, a.mockSeed
		fallback = func() []models.Task {
			return mockdata.Generate(n, seed)
		}
	}
	return api.NewFallbackSource(a.API, fallback, a.logger)
}

// NewNotifier returns the fire-and-forget status notifier for committed drops.
// onDone may be nil.
func (a *App) NewNotifier(onDone func(models.TaskID, models.Status, error)) *api.AsyncNotifier {
	return api.NewAsyncNotifier(a.API, time.Duration(a.Config.API.Timeout), a.logger, onDone)
}

// NewBoard creates an empty board in the configured layout
func (a *App) NewBoard(opts ...board.Option) *board.Board {
	opts = append([]board.Option{board.WithLogger(a.logger)}, opts...)
	return board.New(a.Config.Layout(), nil, opts...)
}

// ConnectEvents dials the change notification hub. The returned error wraps
// an *events.HubError when the hub is not reachable; callers treat that as
// "no live updates" rather than a fatal condition.
func (a *App) ConnectEvents(ctx context.Context) (events.EventPublisher, error) {
	if a.events != nil {
		return a.events, nil
	}

	client, err := events.NewClient(a.Config.Events.SocketPath, events.WithClientLogger(a.logger))
	if err != nil {
		return nil, err
	}
	if err := client.Connect(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}

	a.events = client
	a.logger.Info("connected to event hub", "socket", a.Config.Events.SocketPath)
	return client, nil
}

// Close releases the event hub connection, if any
func (a *App) Close() error {
	if a.events == nil {
		return nil
	}
	err := a.events.Close()
	a.events = nil
	return err
}
