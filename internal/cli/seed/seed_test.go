package seed

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/mockdata"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/server"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

func setup(t *testing.T) (*cli.CLI, *database.Repository) {
	t.Helper()

	repo := testutil.SetupTestRepo(t)
	ts := httptest.NewServer(server.New(repo))
	t.Cleanup(ts.Close)

	cfg := config.Default()
	cfg.API.BaseURL = ts.URL
	c, err := cli.NewCLI(cfg)
	require.NoError(t, err)
	return c, repo
}

func TestSeed_CreatesGeneratedTasks(t *testing.T) {
	c, repo := setup(t)
	ctx := context.Background()

	result, err := Seed(ctx, c.App.API, 10, 4, false)
	require.NoError(t, err)
	assert.Len(t, result.Created, 10)
	assert.Zero(t, result.Deleted)

	stored, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	want := mockdata.Generate(10, 4)
	require.Len(t, stored, len(want))
	for i := range want {
		assert.Equal(t, want[i].Title, stored[i].Title)
		assert.Equal(t, want[i].Status, stored[i].Status)
	}
}

func TestSeed_ResetClearsExisting(t *testing.T) {
	c, repo := setup(t)
	ctx := context.Background()
	testutil.CreateTestTask(t, repo, "Old task", models.StatusDone)

	result, err := Seed(ctx, c.App.API, 3, 1, true)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Deleted)

	count, err := repo.CountTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestSeedCmd(t *testing.T) {
	c, _ := setup(t)

	cmd := SeedCmd()
	cmd.SetContext(cli.WithCLI(context.Background(), c))
	output, err := testutil.ExecuteCommand(t, cmd, "--count", "5", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, strings.Fields(output))

	cmd = SeedCmd()
	cmd.SetContext(cli.WithCLI(context.Background(), c))
	output, err = testutil.ExecuteCommand(t, cmd, "--count", "2", "--reset")
	require.NoError(t, err)
	assert.Contains(t, output, "Created 2 tasks (deleted 5 existing)")
}

func TestSeedCmd_InvalidCount(t *testing.T) {
	c, _ := setup(t)

	cmd := SeedCmd()
	cmd.SetContext(cli.WithCLI(context.Background(), c))
	_, err := testutil.ExecuteCommand(t, cmd, "--count", "0")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
}
