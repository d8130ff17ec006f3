package app

import (
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/tablero/internal/events"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger     *slog.Logger
	httpClient *http.Client
	mockTasks  int
	mockSeed   uint64
	events     events.EventPublisher
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithHTTPClient replaces the HTTP client used for the backend
func WithHTTPClient(hc *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = hc
	}
}

// WithMockData sets the size and seed of the fallback sample collection
func WithMockData(n int, seed uint64) Option {
	return func(cfg *appConfig) {
		cfg.mockTasks = n
		cfg.mockSeed = seed
	}
}

// WithEventPublisher injects an already connected hub client
func WithEventPublisher(ep events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.events = ep
	}
}
