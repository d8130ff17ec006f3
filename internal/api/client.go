// Package api is the HTTP client for the task backend that owns the system of record.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/thenoetrevino/tablero/internal/models"
)

// DefaultTimeout bounds every request when no timeout is configured
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of an error response is read into APIError.Message
const maxErrorBody = 4 << 10

// Client talks JSON over HTTP to the task backend.
// It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithToken sends a bearer token with every request
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimeout overrides DefaultTimeout. It applies to the client given by
// WithHTTPClient too, whatever the option order.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client. Its own Timeout is
// kept unless WithTimeout is also given.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithClientLogger sets the logger for request diagnostics
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the backend rooted at baseURL
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c, nil
}

// BaseURL returns the backend root this client targets
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ListTasks fetches the full task collection
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var list TaskList
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &list); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if err := models.ValidateTasks(list.Tasks); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if list.Tasks == nil {
		list.Tasks = []models.Task{}
	}
	return list.Tasks, nil
}

// GetTask fetches one task
func (c *Client) GetTask(ctx context.Context, id models.TaskID) (*models.Task, error) {
	var task models.Task
	if err := c.do(ctx, http.MethodGet, taskPath(id), nil, &task); err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return &task, nil
}

// UpdateTaskStatus persists a status change
func (c *Client) UpdateTaskStatus(ctx context.Context, id models.TaskID, status models.Status) (*models.Task, error) {
	var task models.Task
	body := StatusUpdate{Status: status}
	if err := c.do(ctx, http.MethodPatch, taskPath(id)+"/status", body, &task); err != nil {
		return nil, fmt.Errorf("failed to update status of task %d: %w", id, err)
	}
	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("failed to update status of task %d: %w", id, err)
	}
	return &task, nil
}

// UpdateTaskTitle renames a task
func (c *Client) UpdateTaskTitle(ctx context.Context, id models.TaskID, title string) (*models.Task, error) {
	var task models.Task
	if err := c.do(ctx, http.MethodPatch, taskPath(id), TitleUpdate{Title: title}, &task); err != nil {
		return nil, fmt.Errorf("failed to update title of task %d: %w", id, err)
	}
	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("failed to update title of task %d: %w", id, err)
	}
	return &task, nil
}

// CreateTask creates a task and returns the stored record
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	var task models.Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks", req, &task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// DeleteTask removes a task
func (c *Client) DeleteTask(ctx context.Context, id models.TaskID) error {
	if err := c.do(ctx, http.MethodDelete, taskPath(id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return nil
}

func taskPath(id models.TaskID) string {
	return "/api/tasks/" + strconv.Itoa(int(id))
}

// do sends one request, encoding in as the JSON body when non-nil and
// decoding the response into out when non-nil
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := sonic.ConfigStd.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Debug("failed to close response body", "error", closeErr)
		}
	}()

	c.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp, requestID)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := sonic.ConfigStd.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response, requestID string) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, RequestID: requestID}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body ErrorResponse
	if sonic.ConfigStd.Unmarshal(raw, &body) == nil && body.Error != "" {
		apiErr.Message = body.Error
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}
