package board

import (
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Option is a functional option for configuring a Board
type Option func(*Board)

// WithNotifier sets the receiver of committed status changes
func WithNotifier(n StatusNotifier) Option {
	return func(b *Board) {
		b.notifier = n
	}
}

// WithTaskClick sets the callback invoked when a card is activated
func WithTaskClick(fn func(models.Task)) Option {
	return func(b *Board) {
		b.onTaskClick = fn
	}
}

// WithEditRequest sets the callback invoked from a card's edit action
func WithEditRequest(fn func(models.Task)) Option {
	return func(b *Board) {
		b.onEditRequest = fn
	}
}

// WithLogger sets the logger used for drop diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(b *Board) {
		b.logger = logger
	}
}
