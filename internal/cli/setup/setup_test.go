package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

func TestWriteConfig_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tablero", "config.yaml")

	result, err := WriteConfig(Options{Path: path, Preset: "wave", Layout: "standard", BaseURL: "http://backend:9000"})
	require.NoError(t, err)
	assert.Equal(t, path, result.Path)
	assert.Equal(t, "wave", result.Preset)
	assert.Equal(t, "standard", result.Layout)

	t.Setenv(config.EnvAPIURL, "")
	t.Setenv(config.EnvLayout, "")
	t.Setenv(config.EnvThemeFile, "")
	loaded, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://backend:9000", loaded.API.BaseURL)
	assert.Equal(t, "standard", loaded.Board.Layout)
	assert.Equal(t, "wave", loaded.ColorScheme.Preset)
	assert.Equal(t, config.DefaultKeyMappings().PickUpDrop, loaded.KeyMappings.PickUpDrop)
}

func TestWriteConfig_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  layout: full\n"), 0o644))

	_, err := WriteConfig(Options{Path: path, Preset: "default", Layout: "full"})
	require.ErrorIs(t, err, ErrConfigExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "board:\n  layout: full\n", string(data))

	_, err = WriteConfig(Options{Path: path, Preset: "default", Layout: "full", Force: true})
	require.NoError(t, err)
}

func TestWriteConfig_RejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, err := WriteConfig(Options{Path: path, Preset: "neon", Layout: "full"})
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = WriteConfig(Options{Path: path, Preset: "default", Layout: "sideways"})
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "nothing is written for invalid values")
}

func TestInitCmd_WritesToConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, err := testutil.ExecuteCommand(t, InitCmd(), "--preset", "monochrome", "--json")
	require.NoError(t, err)

	result := testutil.ParseJSON(t, out)
	assert.Equal(t, true, result["success"])

	want, err := config.Path()
	require.NoError(t, err)
	data := result["data"].(map[string]any)
	assert.Equal(t, want, data["path"])
	assert.FileExists(t, want)
}

func TestInitCmd_ExistingFileIsUsageError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	_, err := testutil.ExecuteCommand(t, InitCmd())
	require.NoError(t, err)

	_, err = testutil.ExecuteCommand(t, InitCmd())
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
}
