package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/api"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

// recordingSender captures published events
type recordingSender struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingSender) SendEvent(event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingSender) sent() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event(nil), r.events...)
}

// newTestBackend starts the server over an in-memory store and returns an
// API client pointed at it
func newTestBackend(t *testing.T, opts ...Option) (*api.Client, *recordingSender, *Server) {
	t.Helper()

	sender := &recordingSender{}
	repo := testutil.SetupTestRepo(t)
	srv := New(repo, append([]Option{WithEvents(sender)}, opts...)...)

	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	client, err := api.NewClient(ts.URL)
	require.NoError(t, err)
	return client, sender, srv
}

func TestListTasks_Empty(t *testing.T) {
	client, _, _ := newTestBackend(t)

	tasks, err := client.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestCreateAndList(t *testing.T) {
	client, sender, _ := newTestBackend(t)
	ctx := context.Background()

	created, err := client.CreateTask(ctx, api.CreateTaskRequest{
		Title:    "Renew certificates",
		Status:   models.StatusTodo,
		Priority: models.PriorityHigh,
		Tags:     []string{"ops"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.TaskID(1), created.ID)
	assert.Equal(t, models.StatusTodo, created.Status)

	tasks, err := client.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Renew certificates", tasks[0].Title)
	assert.Equal(t, []string{"ops"}, tasks[0].Tags)

	sent := sender.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, events.EventTasksChanged, sent[0].Type)
	assert.Equal(t, created.ID, sent[0].TaskID)
}

func TestCreateTask_DefaultsStatus(t *testing.T) {
	client, _, _ := newTestBackend(t)

	created, err := client.CreateTask(context.Background(), api.CreateTaskRequest{Title: "Triage me"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusNew, created.Status)
	assert.Equal(t, models.PriorityMedium, created.Priority)
}

func TestCreateTask_EmptyTitleIsBadRequest(t *testing.T) {
	client, sender, _ := newTestBackend(t)

	_, err := client.CreateTask(context.Background(), api.CreateTaskRequest{Title: " "})
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Empty(t, sender.sent())
}

func TestUpdateStatus(t *testing.T) {
	client, sender, _ := newTestBackend(t)
	ctx := context.Background()

	created, err := client.CreateTask(ctx, api.CreateTaskRequest{Title: "Move me", Status: models.StatusTodo})
	require.NoError(t, err)

	updated, err := client.UpdateTaskStatus(ctx, created.ID, models.StatusReview)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReview, updated.Status)

	got, err := client.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReview, got.Status)

	sent := sender.sent()
	require.Len(t, sent, 2)
	assert.Equal(t, models.StatusReview, sent[1].Status)
}

func TestUpdateStatus_MissingTask(t *testing.T) {
	client, _, _ := newTestBackend(t)

	_, err := client.UpdateTaskStatus(context.Background(), 99, models.StatusDone)
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	task := testutil.CreateTestTask(t, repo, "x", models.StatusTodo)
	srv := New(repo)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/1/status", strings.NewReader(`{"status":"archived"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)

	stored, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusTodo, stored.Status)
}

func TestUpdateStatus_InjectedFailureLeavesStoreUntouched(t *testing.T) {
	client, sender, srv := newTestBackend(t, WithStatusFailureRate(1))
	srv.random = func() float64 { return 0 }
	ctx := context.Background()

	created, err := client.CreateTask(ctx, api.CreateTaskRequest{Title: "Sticky", Status: models.StatusTodo})
	require.NoError(t, err)

	_, err = client.UpdateTaskStatus(ctx, created.ID, models.StatusDone)
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)

	got, err := client.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusTodo, got.Status)
	assert.Len(t, sender.sent(), 1, "only the create is announced")
}

func TestUpdateTitleAndDelete(t *testing.T) {
	client, sender, _ := newTestBackend(t)
	ctx := context.Background()

	created, err := client.CreateTask(ctx, api.CreateTaskRequest{Title: "Draft"})
	require.NoError(t, err)

	renamed, err := client.UpdateTaskTitle(ctx, created.ID, "Final")
	require.NoError(t, err)
	assert.Equal(t, "Final", renamed.Title)

	require.NoError(t, client.DeleteTask(ctx, created.ID))

	_, err = client.GetTask(ctx, created.ID)
	assert.ErrorIs(t, err, api.ErrNotFound)
	assert.Len(t, sender.sent(), 3)
}

func TestBadTaskID(t *testing.T) {
	srv := New(testutil.SetupTestRepo(t))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tasks/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthWithClientRequestID(t *testing.T) {
	srv := New(testutil.SetupTestRepo(t))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","tasks":0}`, rec.Body.String())
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	srv := New(testutil.SetupTestRepo(t))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"route not found"}`, rec.Body.String())
}

func TestHubMetricsRoute(t *testing.T) {
	srv := New(testutil.SetupTestRepo(t))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hub", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	srv = New(testutil.SetupTestRepo(t), WithHubMetrics(func() any { return map[string]int{"connectedClients": 2} }))
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hub", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"connectedClients":2}`, rec.Body.String())
}

// TestStatusChangeReachesListeners wires the backend to a real hub and checks
// a board listening on the socket hears about the move
func TestStatusChangeReachesListeners(t *testing.T) {
	hub, socketPath := testutil.SetupTestHub(t)
	repo := testutil.SetupTestRepo(t)
	task := testutil.CreateTestTask(t, repo, "Watch me", models.StatusTodo)

	ts := httptest.NewServer(New(repo, WithEvents(hub)))
	t.Cleanup(ts.Close)

	listener := testutil.SetupTestClient(t, socketPath)
	require.True(t, testutil.WaitForClientCount(t, hub, 1, 2*time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := listener.Listen(ctx)
	require.NoError(t, err)

	client, err := api.NewClient(ts.URL)
	require.NoError(t, err)
	_, err = client.UpdateTaskStatus(ctx, task.ID, models.StatusDone)
	require.NoError(t, err)

	event := testutil.WaitForEvent(t, ch, 2*time.Second)
	assert.Equal(t, events.EventTasksChanged, event.Type)
	assert.Equal(t, task.ID, event.TaskID)
	assert.Equal(t, models.StatusDone, event.Status)
	assert.Equal(t, int64(1), event.SequenceID)
}
