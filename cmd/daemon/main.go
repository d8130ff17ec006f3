// Command daemon runs the tablero event hub on its own, for setups where the
// backend is not "tablero serve" but still wants to push change notifications.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/daemon"
	"github.com/thenoetrevino/tablero/internal/logging"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	logger := logging.Setup(os.Stderr, logging.ParseLevel(os.Getenv("TABLERO_LOG_LEVEL")))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	socketPath := cfg.Events.SocketPath

	// Ensure the socket directory exists with secure permissions
	if err := os.MkdirAll(filepath.Dir(socketPath), 0o700); err != nil {
		logger.Error("failed to create socket directory", "error", err)
		os.Exit(1)
	}

	server, err := daemon.NewServer(socketPath, daemon.WithLogger(logger))
	if err != nil {
		logger.Error("failed to create event hub", "error", err)
		os.Exit(1)
	}

	logger.Info("tablero event hub starting", "socket_path", socketPath, "pid", os.Getpid())

	// Blocks until shutdown
	if err := server.Start(ctx); err != nil {
		logger.Error("event hub error", "error", err)
		os.Exit(1)
	}

	slog.Info("tablero event hub shutting down gracefully", "metrics", server.Metrics())
}
