// Package config loads tablero's YAML configuration, layered under
// environment overrides and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/tablero/internal/config/colors"
	"github.com/thenoetrevino/tablero/internal/models"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the file
const (
	EnvAPIURL    = "TABLERO_API_URL"
	EnvAPIToken  = "TABLERO_API_TOKEN"
	EnvLayout    = "TABLERO_LAYOUT"
	EnvSocket    = "TABLERO_SOCKET"
	EnvThemeFile = "TABLERO_THEME_FILE"
)

const (
	DefaultAPIURL     = "http://127.0.0.1:7420"
	DefaultServerAddr = "127.0.0.1:7420"
	DefaultAPITimeout = 10 * time.Second
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	API         APIConfig          `yaml:"api"`
	Board       BoardConfig        `yaml:"board"`
	Events      EventsConfig       `yaml:"events"`
	Server      ServerConfig       `yaml:"server"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// APIConfig points the board at the task backend
type APIConfig struct {
	BaseURL string   `yaml:"base_url"`
	Token   string   `yaml:"token"`
	Timeout Duration `yaml:"timeout"`
}

// Duration is a time.Duration written as "10s" in YAML
type Duration time.Duration

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// BoardConfig controls the board view
type BoardConfig struct {
	Layout string `yaml:"layout"`
	// MockFallback shows sample tasks when the backend is unreachable.
	// Nil means enabled.
	MockFallback *bool `yaml:"mock_fallback"`
}

// MockFallbackEnabled reports whether sample data replaces a failed load
func (b BoardConfig) MockFallbackEnabled() bool {
	return b.MockFallback == nil || *b.MockFallback
}

// EventsConfig locates the change notification hub
type EventsConfig struct {
	SocketPath string `yaml:"socket_path"`
}

// ServerConfig configures the development backend
type ServerConfig struct {
	Addr   string `yaml:"addr"`
	DBPath string `yaml:"db_path"`
}

// Default returns a config with every value filled in
func Default() *Config {
	return WithDefaults(&Config{})
}

// WithDefaults fills every unset value of cfg in place and returns it
func WithDefaults(cfg *Config) *Config {
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from TABLERO_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// loadDotEnv reads ./.env into the environment without overriding
// variables that are already set
func loadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// Load loads config from the user's config directory.
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	configPath, err := Path()
	if err != nil {
		// Default config if we can't determine config path
		return finish(&Config{})
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path; a missing file yields defaults
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return finish(&Config{})
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return finish(&config)
}

func finish(config *Config) (*Config, error) {
	loadThemeFile(config)
	config.applyEnv()
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnv overlays TABLERO_* variables
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv(EnvAPIToken); v != "" {
		c.API.Token = v
	}
	if v := os.Getenv(EnvLayout); v != "" {
		c.Board.Layout = v
	}
	if v := os.Getenv(EnvSocket); v != "" {
		c.Events.SocketPath = v
	}
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	if _, err := models.ParseLayout(c.Board.Layout); err != nil {
		return fmt.Errorf("%w: board.layout: %w", ErrInvalidConfig, err)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("%w: api.timeout must not be negative", ErrInvalidConfig)
	}
	if c.ColorScheme.Preset != "" && !slices.Contains(colors.Presets(), c.ColorScheme.Preset) {
		return fmt.Errorf("%w: theme.preset %q, want one of %v", ErrInvalidConfig, c.ColorScheme.Preset, colors.Presets())
	}
	return nil
}

// Layout resolves the configured board layout
func (c *Config) Layout() models.Layout {
	layout, err := models.ParseLayout(c.Board.Layout)
	if err != nil {
		return models.FullLayout
	}
	return layout
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config as YAML to configPath, creating its directory
func (c *Config) SaveTo(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tablero", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tablero", "config.yaml"), nil
}

// dataDir returns ~/.tablero, or a relative .tablero if home is unknown
func dataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".tablero"
	}
	return filepath.Join(homeDir, ".tablero")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultAPIURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = Duration(DefaultAPITimeout)
	}
	if c.Board.Layout == "" {
		c.Board.Layout = models.FullLayout.Name
	}
	if c.Events.SocketPath == "" {
		c.Events.SocketPath = filepath.Join(dataDir(), "tablero.sock")
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
	if c.Server.DBPath == "" {
		c.Server.DBPath = filepath.Join(dataDir(), "tasks.db")
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
