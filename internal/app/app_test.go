package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
)

func testConfig(baseURL string) *config.Config {
	cfg := config.Default()
	cfg.API.BaseURL = baseURL
	return cfg
}

func TestNew_DefaultsConfig(t *testing.T) {
	a, err := New(nil)
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	assert.Equal(t, config.DefaultAPIURL, a.API.BaseURL())
	assert.NotNil(t, a.Logger())
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	_, err := New(testConfig("ftp://example.com"))
	require.Error(t, err)
}

func TestSource_FallsBackToMockData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a, err := New(testConfig(srv.URL), WithMockData(7, 3))
	require.NoError(t, err)

	snap, err := a.Source().Load(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.Mock)
	assert.Len(t, snap.Tasks, 7)
	assert.Error(t, snap.Err)
}

func TestSource_FallbackDisabled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	off := false
	cfg.Board.MockFallback = &off

	a, err := New(cfg)
	require.NoError(t, err)

	_, err = a.Source().Load(context.Background())
	require.Error(t, err)
}

func TestNewNotifier_SendsStatusUpdate(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":4,"title":"x","status":"done"}`))
	}))
	defer srv.Close()

	a, err := New(testConfig(srv.URL))
	require.NoError(t, err)

	var gotErr error
	n := a.NewNotifier(func(_ models.TaskID, _ models.Status, err error) { gotErr = err })
	n.NotifyStatusChange(4, models.StatusDone)
	n.Wait()

	require.NoError(t, gotErr)
	assert.Equal(t, "/api/tasks/4/status", gotPath)
}

func TestNewBoard_UsesConfiguredLayout(t *testing.T) {
	cfg := testConfig(config.DefaultAPIURL)
	cfg.Board.Layout = models.StandardLayout.Name

	a, err := New(cfg)
	require.NoError(t, err)

	b := a.NewBoard(board.WithNotifier(board.NotifierFunc(func(models.TaskID, models.Status) {})))
	assert.Equal(t, models.StandardLayout.Name, b.Layout().Name)
	assert.Empty(t, b.Tasks())
}

func TestConnectEvents_MissingSocketIsClassified(t *testing.T) {
	cfg := testConfig(config.DefaultAPIURL)
	cfg.Events.SocketPath = filepath.Join(t.TempDir(), "missing.sock")

	a, err := New(cfg)
	require.NoError(t, err)

	_, err = a.ConnectEvents(context.Background())
	require.Error(t, err)

	var hubErr *events.HubError
	require.ErrorAs(t, err, &hubErr)
	assert.Equal(t, events.ErrSocketNotFound, hubErr.Code)
	assert.NoError(t, a.Close())
}
