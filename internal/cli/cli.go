// Package cli holds the shared plumbing of tablero's cobra commands: the
// per-invocation container, output formatting and exit codes.
package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
)

// ErrNoCLI is returned when a command runs without a CLI in its context
var ErrNoCLI = errors.New("cli not initialized")

// CLI represents the CLI application context
type CLI struct {
	App    *app.App
	Config *config.Config
}

// NewCLI builds the application container for one command invocation
func NewCLI(cfg *config.Config, opts ...app.Option) (*CLI, error) {
	application, err := app.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &CLI{App: application, Config: application.Config}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}

type cliKey struct{}

// WithCLI attaches c to ctx for subcommands to pick up
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey{}, c)
}

// GetCLIFromContext returns the CLI attached by the root command
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	c, ok := ctx.Value(cliKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}
