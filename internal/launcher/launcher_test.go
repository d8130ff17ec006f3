package launcher

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/server"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

func setupApp(t *testing.T, socketPath string) (*app.App, *database.Repository) {
	t.Helper()

	repo := testutil.SetupTestRepo(t)
	ts := httptest.NewServer(server.New(repo))
	t.Cleanup(ts.Close)

	cfg := config.Default()
	cfg.API.BaseURL = ts.URL
	cfg.Events.SocketPath = socketPath

	application, err := app.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })
	return application, repo
}

func TestDeps_WithoutHub(t *testing.T) {
	application, repo := setupApp(t, filepath.Join(t.TempDir(), "missing.sock"))
	testutil.CreateTestTask(t, repo, "Draft RFC", models.StatusNew)
	testutil.CreateTestTask(t, repo, "Review PR", models.StatusReview)

	deps, wait := Deps(context.Background(), application)
	defer wait()

	assert.Nil(t, deps.Events, "a missing hub leaves the board without live updates")
	require.NotNil(t, deps.Source)
	require.NotNil(t, deps.Titles)

	snap, err := deps.Source.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, snap.Mock)
	require.Len(t, snap.Tasks, 2)
	assert.Equal(t, "Draft RFC", snap.Tasks[0].Title)
}

func TestDeps_NotifierReachesBackend(t *testing.T) {
	application, repo := setupApp(t, filepath.Join(t.TempDir(), "missing.sock"))
	task := testutil.CreateTestTask(t, repo, "Wire billing", models.StatusTodo)

	deps, wait := Deps(context.Background(), application)

	var (
		mu      sync.Mutex
		results []error
	)
	notifier := deps.NewNotifier(func(id models.TaskID, status models.Status, err error) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, task.ID, id)
		assert.Equal(t, models.StatusDone, status)
		results = append(results, err)
	})
	require.NotNil(t, notifier)

	notifier.NotifyStatusChange(task.ID, models.StatusDone)
	wait()

	mu.Lock()
	require.Len(t, results, 1)
	assert.NoError(t, results[0])
	mu.Unlock()

	got, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, got.Status)
}

func TestDeps_WaitWithoutNotifier(t *testing.T) {
	application, _ := setupApp(t, filepath.Join(t.TempDir(), "missing.sock"))

	_, wait := Deps(context.Background(), application)
	assert.NotPanics(t, wait)
}

func TestDeps_ConnectsToHub(t *testing.T) {
	_, socketPath := testutil.SetupTestHub(t)
	application, _ := setupApp(t, socketPath)

	deps, wait := Deps(context.Background(), application)
	defer wait()

	require.NotNil(t, deps.Events)
}
