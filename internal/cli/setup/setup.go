// Package setup writes a starter configuration file.
package setup

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/config"
)

// ErrConfigExists is returned when init would overwrite a config file
var ErrConfigExists = errors.New("config file already exists")

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long: `Write a config file filled with defaults so every setting is visible
and editable. Environment variables still override the file at load time.

Examples:
  tablero init
  tablero init --preset wave --layout standard
  tablero --config ./tablero.yaml init --force`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().String("preset", "default", "Color preset (default, monochrome, wave)")
	cmd.Flags().String("layout", "full", "Board layout (full, standard)")
	cmd.Flags().String("base-url", config.DefaultAPIURL, "Backend base URL to write")
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cli.AddOutputFlags(cmd)

	return cmd
}

// Result reports where the config was written
type Result struct {
	Path   string `json:"path"`
	Preset string `json:"preset"`
	Layout string `json:"layout"`
}

func (r Result) Human() string {
	return fmt.Sprintf("✓ Wrote %s (%s theme, %s layout)", r.Path, r.Preset, r.Layout)
}

// Options select what init writes
type Options struct {
	Path    string
	Preset  string
	Layout  string
	BaseURL string
	Force   bool
}

// WriteConfig writes a default config customised by opts
func WriteConfig(opts Options) (Result, error) {
	if !opts.Force {
		if _, err := os.Stat(opts.Path); err == nil {
			return Result{}, fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, opts.Path)
		}
	}

	cfg := &config.Config{}
	cfg.API.BaseURL = opts.BaseURL
	cfg.Board.Layout = opts.Layout
	cfg.ColorScheme.Preset = opts.Preset
	cfg = config.WithDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	if err := cfg.SaveTo(opts.Path); err != nil {
		return Result{}, fmt.Errorf("failed to write config: %w", err)
	}
	return Result{Path: opts.Path, Preset: cfg.ColorScheme.Preset, Layout: cfg.Board.Layout}, nil
}

func runInit(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		if path, err = config.Path(); err != nil {
			return formatter.Fail(cli.ExitError, "CONFIG_PATH_ERROR", err)
		}
	}

	opts := Options{Path: path}
	opts.Preset, _ = cmd.Flags().GetString("preset")
	opts.Layout, _ = cmd.Flags().GetString("layout")
	opts.BaseURL, _ = cmd.Flags().GetString("base-url")
	opts.Force, _ = cmd.Flags().GetBool("force")

	result, err := WriteConfig(opts)
	switch {
	case errors.Is(err, ErrConfigExists):
		return formatter.Fail(cli.ExitUsage, "CONFIG_EXISTS", err)
	case errors.Is(err, config.ErrInvalidConfig):
		return formatter.Fail(cli.ExitValidation, "INVALID_CONFIG", err)
	case err != nil:
		return formatter.Fail(cli.ExitError, "WRITE_ERROR", err)
	}

	if formatter.Quiet {
		_, err := fmt.Fprintln(formatter.Out, result.Path)
		return err
	}
	return formatter.Success(result)
}
