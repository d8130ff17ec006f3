// Package tui hosts the board in a Bubble Tea program. The board owns the
// task collection; everything in this package is presentation and input.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/api"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Loader fetches the full task collection
type Loader interface {
	Load(ctx context.Context) (api.Snapshot, error)
}

// TitleUpdater persists a title edit
type TitleUpdater interface {
	UpdateTaskTitle(ctx context.Context, id models.TaskID, title string) (*models.Task, error)
}

// Listener yields change notifications from the event hub
type Listener interface {
	Listen(ctx context.Context) (<-chan events.Event, error)
}

// NotifierFactory builds the board's status notifier. onDone observes each
// notification's outcome; it is for display only and never touches the board.
type NotifierFactory func(onDone func(models.TaskID, models.Status, error)) board.StatusNotifier

// Deps are the collaborators the model talks to
type Deps struct {
	Source      Loader
	Titles      TitleUpdater
	NewNotifier NotifierFactory
	// Events may be nil when the hub is unreachable
	Events Listener
	Logger *slog.Logger
}

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	Config *config.Config
	Board  *board.Board

	UiState           *state.UIState
	NotificationState *state.NotificationState
	ConnectionState   *state.ConnectionState

	// EventChan carries hub events once Listen succeeded
	EventChan           <-chan events.Event
	SubscriptionStarted bool

	source Loader
	titles TitleUpdater
	events Listener

	// statusResults carries notifier outcomes back onto the UI loop
	statusResults chan statusResultMsg

	keys       KeyMap
	help       help.Model
	titleInput textinput.Model
	logger     *slog.Logger

	// detail scrolls the description panel opened by a card click
	detail viewport.Model
}

// statusResultBuffer bounds how many unread outcomes may queue up
const statusResultBuffer = 32

// New creates the model. The board starts empty; Init loads the first snapshot.
func New(ctx context.Context, cfg *config.Config, deps Deps) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	components.InitStyles(cfg.ColorScheme)

	ui := state.NewUIState()
	results := make(chan statusResultMsg, statusResultBuffer)

	opts := []board.Option{
		board.WithLogger(logger),
		board.WithTaskClick(func(t models.Task) {
			ui.OpenDetail(t.ID)
		}),
		board.WithEditRequest(func(t models.Task) {
			ui.OpenEditor(t.ID)
		}),
	}
	if deps.NewNotifier != nil {
		opts = append(opts, board.WithNotifier(deps.NewNotifier(func(id models.TaskID, status models.Status, err error) {
			select {
			case results <- statusResultMsg{ID: id, Status: status, Err: err}:
			case <-ctx.Done():
			}
		})))
	}

	input := textinput.New()
	input.CharLimit = 200
	input.SetWidth(50)

	initialStatus := state.Disconnected
	if deps.Events != nil {
		initialStatus = state.Reconnecting
	}

	return Model{
		Ctx:               ctx,
		Config:            cfg,
		Board:             board.New(cfg.Layout(), nil, opts...),
		UiState:           ui,
		NotificationState: state.NewNotificationState(),
		ConnectionState:   state.NewConnectionState(initialStatus),
		source:            deps.Source,
		titles:            deps.Titles,
		events:            deps.Events,
		statusResults:     results,
		keys:              NewKeyMap(cfg.KeyMappings),
		help:              help.New(),
		titleInput:        input,
		detail:            viewport.New(),
		logger:            logger,
	}
}

// Init loads the first snapshot and starts the background listeners
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadTasks(),
		m.listenEvents(),
		m.waitForStatusResult(),
	)
}

// currentStatus returns the status of the selected column
func (m Model) currentStatus() (models.Status, bool) {
	order := m.Board.Columns().Order()
	idx := m.UiState.SelectedColumn()
	if idx < 0 || idx >= len(order) {
		return "", false
	}
	return order[idx], true
}

// getCurrentTasks returns the cards of the selected column
func (m Model) getCurrentTasks() []models.Task {
	status, ok := m.currentStatus()
	if !ok {
		return nil
	}
	return m.Board.Columns().Bucket(status)
}

// getCurrentTask returns the selected card
func (m Model) getCurrentTask() (models.Task, bool) {
	tasks := m.getCurrentTasks()
	idx := m.UiState.SelectedTask()
	if idx < 0 || idx >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[idx], true
}

// hoverStatus returns the column under a dragged card
func (m Model) hoverStatus() (models.Status, bool) {
	order := m.Board.Columns().Order()
	idx := m.UiState.HoverColumn()
	if idx < 0 || idx >= len(order) {
		return "", false
	}
	return order[idx], true
}

// visibleTasks is how many cards fit in one column at the current height
func (m Model) visibleTasks() int {
	return components.VisibleTasks(m.UiState.ContentHeight())
}

// clampSelection keeps selection, hover and scroll inside the current partition.
// Called after every resync and commit.
func (m Model) clampSelection() {
	cols := m.Board.Columns()
	n := len(cols.Order())

	m.UiState.SetSelectedColumn(min(m.UiState.SelectedColumn(), max(0, n-1)))
	m.UiState.SetHoverColumn(min(m.UiState.HoverColumn(), max(0, n-1)))

	tasks := m.getCurrentTasks()
	m.UiState.SetSelectedTask(min(m.UiState.SelectedTask(), max(0, len(tasks)-1)))

	for _, status := range cols.Order() {
		m.UiState.ClampTaskScroll(status, cols.BucketLen(status), m.visibleTasks())
	}
	m.UiState.ClampViewport(n)
	m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())
}

// selectTask points the selection at id, wherever it now lives
func (m Model) selectTask(id models.TaskID) {
	cols := m.Board.Columns()
	for ci, status := range cols.Order() {
		for ti, t := range cols.Bucket(status) {
			if t.ID != id {
				continue
			}
			m.UiState.SetSelectedColumn(ci)
			m.UiState.SetSelectedTask(ti)
			m.UiState.EnsureSelectionVisible(ci)
			m.UiState.EnsureTaskVisible(status, ti, m.visibleTasks())
			return
		}
	}
}
