// Package server is the development task backend: the REST surface the
// board talks to, backed by sqlite and announcing writes on the event hub.
package server

import (
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/events"
)

// Server holds the chi router and the task store
type Server struct {
	router         chi.Router
	repo           database.TaskRepository
	events         events.Sender
	hubMetrics     func() any
	logger         *slog.Logger
	statusFailRate float64
	random         func() float64
}

// Option configures optional Server behavior.
type Option func(*Server)

// WithEvents publishes a change event after every write
func WithEvents(sender events.Sender) Option {
	return func(s *Server) {
		s.events = sender
	}
}

// WithHubMetrics exposes the event hub counters at GET /api/hub
func WithHubMetrics(snapshot func() any) Option {
	return func(s *Server) {
		s.hubMetrics = snapshot
	}
}

// WithLogger sets the logger used for request logs
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStatusFailureRate makes that fraction of status updates fail with 503
// without touching the store, so a board's optimistic state visibly drifts
// until its next resync
func WithStatusFailureRate(rate float64) Option {
	return func(s *Server) {
		s.statusFailRate = min(max(rate, 0), 1)
	}
}

// New creates a Server with all routes configured
func New(repo database.TaskRepository, opts ...Option) *Server {
	s := &Server{
		repo:   repo,
		logger: slog.Default(),
		random: rand.Float64,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/hub", s.handleHubMetrics)

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", s.handleListTasks)
			r.Post("/", s.handleCreateTask)
			r.Get("/{id}", s.handleGetTask)
			r.Patch("/{id}", s.handleUpdateTitle)
			r.Delete("/{id}", s.handleDeleteTask)
			r.Patch("/{id}/status", s.handleUpdateStatus)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	s.router = r
	return s
}

// ServeHTTP implements the http.Handler interface, delegating to the chi router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
