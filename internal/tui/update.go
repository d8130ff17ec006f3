package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tasksLoadedMsg:
		cmd := m.handleTasksLoaded(msg)
		m.syncDetail()
		return m, cmd

	case loadFailedMsg:
		m.logger.Error("failed to load tasks", "error", msg.Err)
		m.ConnectionState.SetSource(state.SourceOffline)
		m.NotificationState.Add(state.LevelError, fmt.Sprintf("Failed to load tasks: %v", msg.Err))
		return m, nil

	case hubListeningMsg:
		m.EventChan = msg.ch
		m.SubscriptionStarted = true
		m.ConnectionState.SetStatus(state.Connected)
		return m, m.SubscribeToEvents()

	case hubUnavailableMsg:
		m.logger.Warn("event hub unavailable, live updates disabled", "error", msg.Err)
		m.ConnectionState.SetStatus(state.Disconnected)
		return m, nil

	case hubClosedMsg:
		m.logger.Info("event channel closed")
		m.EventChan = nil
		m.SubscriptionStarted = false
		m.ConnectionState.SetStatus(state.Disconnected)
		return m, nil

	case RefreshMsg:
		var cmds []tea.Cmd
		if msg.Event.Type == events.EventTasksChanged {
			cmds = append(cmds, m.loadTasks())
		}
		// Continue listening for more events
		cmds = append(cmds, m.SubscribeToEvents())
		return m, tea.Batch(cmds...)

	case statusResultMsg:
		if msg.Err != nil {
			m.NotificationState.Add(state.LevelError, fmt.Sprintf(
				"Saving #%d as %s failed, board may be out of date until refresh",
				msg.ID, msg.Status.Label()))
		}
		return m, m.waitForStatusResult()

	case titleSavedMsg:
		if msg.Err != nil {
			m.NotificationState.Add(state.LevelError, fmt.Sprintf("Failed to rename #%d: %v", msg.ID, msg.Err))
			return m, nil
		}
		m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Renamed #%d", msg.ID))
		return m, m.loadTasks()

	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.help.SetWidth(msg.Width)
		m.clampSelection()
		m.syncDetail()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleTasksLoaded resyncs the board wholesale from a snapshot
func (m Model) handleTasksLoaded(msg tasksLoadedMsg) tea.Cmd {
	snap := msg.Snapshot
	m.Board.Resync(snap.Tasks)

	wasMock := m.ConnectionState.Source() == state.SourceMock
	if snap.Mock {
		m.ConnectionState.SetSource(state.SourceMock)
		if !wasMock {
			m.NotificationState.Add(state.LevelWarning, "Backend unreachable, showing mock data")
		}
	} else {
		m.ConnectionState.SetSource(state.SourceLive)
		m.NotificationState.ClearLevel(state.LevelWarning)
	}

	m.clampSelection()
	return nil
}

// handleKey dispatches key presses to the handler for the current mode
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.UiState.Mode() {
	case state.HelpMode:
		return m.handleHelpMode(msg)
	case state.DetailMode:
		return m.handleDetailMode(msg)
	case state.EditMode:
		return m.handleEditMode(msg)
	}

	if m.Board.Dragging() {
		return m, m.handleDragMode(msg)
	}
	return m.handleNormalMode(msg)
}

// handleNormalMode handles navigation and starts gestures
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.ClearLevel(state.LevelInfo)
	km := m.keys

	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit
	case key.Matches(msg, km.ShowHelp):
		m.help.ShowAll = true
		m.UiState.SetMode(state.HelpMode)
	case key.Matches(msg, km.PrevColumn):
		m.moveColumn(-1)
	case key.Matches(msg, km.NextColumn):
		m.moveColumn(1)
	case key.Matches(msg, km.PrevTask):
		m.moveTask(-1)
	case key.Matches(msg, km.NextTask):
		m.moveTask(1)
	case key.Matches(msg, km.PickUpDrop):
		m.pickUp()
	case key.Matches(msg, km.ViewTask):
		if task, ok := m.getCurrentTask(); ok && m.Board.Click(task.ID) {
			m.detail.GotoTop()
			m.syncDetail()
		}
	case key.Matches(msg, km.EditTask):
		if task, ok := m.getCurrentTask(); ok {
			cmd := m.requestEdit(task.ID)
			return m, cmd
		}
	case key.Matches(msg, km.Refresh):
		return m, m.loadTasks()
	}
	return m, nil
}

// moveColumn shifts the column selection by delta
func (m Model) moveColumn(delta int) {
	n := len(m.Board.Columns().Order())
	next := m.UiState.SelectedColumn() + delta
	if next < 0 || next >= n {
		return
	}
	m.UiState.SetSelectedColumn(next)
	m.UiState.SetSelectedTask(0)
	m.UiState.EnsureSelectionVisible(next)
	if status, ok := m.currentStatus(); ok {
		m.UiState.SetTaskScrollOffset(status, 0)
	}
}

// moveTask shifts the card selection by delta within the column
func (m Model) moveTask(delta int) {
	tasks := m.getCurrentTasks()
	next := m.UiState.SelectedTask() + delta
	if next < 0 || next >= len(tasks) {
		return
	}
	m.UiState.SetSelectedTask(next)
	if status, ok := m.currentStatus(); ok {
		m.UiState.EnsureTaskVisible(status, next, m.visibleTasks())
	}
}

// pickUp starts a gesture on the selected card
func (m Model) pickUp() {
	task, ok := m.getCurrentTask()
	if !ok {
		return
	}
	m.Board.StartDrag(task.ID)
	m.UiState.SetHoverColumn(m.UiState.SelectedColumn())
}

// handleDragMode moves the hover column and resolves the gesture
func (m Model) handleDragMode(msg tea.KeyPressMsg) tea.Cmd {
	km := m.keys

	switch {
	case key.Matches(msg, km.PrevColumn):
		m.moveHover(-1)
	case key.Matches(msg, km.NextColumn):
		m.moveHover(1)
	case key.Matches(msg, km.PickUpDrop, km.ViewTask):
		target := board.NoTarget()
		if status, ok := m.hoverStatus(); ok {
			target = board.OnColumn(status)
		}
		m.applyDrop(m.Board.EndDrag(target))
	case key.Matches(msg, km.CancelDrag, km.Quit):
		m.applyDrop(m.Board.EndDrag(board.NoTarget()))
	}
	return nil
}

// moveHover shifts the drop target by delta
func (m Model) moveHover(delta int) {
	n := len(m.Board.Columns().Order())
	next := m.UiState.HoverColumn() + delta
	if next < 0 || next >= n {
		return
	}
	m.UiState.SetHoverColumn(next)
	m.UiState.EnsureSelectionVisible(next)
}

// applyDrop reflects a drop outcome in the UI. The board already committed
// and notified; nothing here changes task data.
func (m Model) applyDrop(drop board.Drop) {
	switch drop.Outcome {
	case board.DropMoved:
		m.selectTask(drop.TaskID)
		m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Moved #%d to %s", drop.TaskID, drop.To.Label()))
	case board.DropTaskMissing:
		m.NotificationState.Add(state.LevelWarning, fmt.Sprintf("Task #%d no longer exists", drop.TaskID))
		m.clampSelection()
	case board.DropSameColumn, board.DropCancelled:
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())
	}
}

// requestEdit routes an edit action through the board callback and, when the
// callback opened the editor, seeds the input with the current title
func (m *Model) requestEdit(id models.TaskID) tea.Cmd {
	if !m.Board.RequestEdit(id) || m.UiState.Mode() != state.EditMode {
		return nil
	}
	task, _ := m.Board.Task(id)
	m.titleInput.SetValue(task.Title)
	m.titleInput.CursorEnd()
	return m.titleInput.Focus()
}

// handleHelpMode closes the help screen
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.keys
	if key.Matches(msg, km.ShowHelp, km.Quit, km.CancelDrag, km.ViewTask) || msg.String() == "esc" {
		m.help.ShowAll = false
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleDetailMode handles keys while the detail panel is open
func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.keys
	switch {
	case key.Matches(msg, km.EditTask):
		id := m.UiState.DetailTask()
		m.UiState.CloseOverlay()
		cmd := m.requestEdit(id)
		return m, cmd
	case key.Matches(msg, km.Quit, km.ViewTask, km.CancelDrag) || msg.String() == "esc":
		m.UiState.CloseOverlay()
	default:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return m, nil
}

// syncDetail sizes the detail viewport to the terminal and refreshes its
// content from the board. A task that vanished on resync closes the panel.
func (m *Model) syncDetail() {
	if m.UiState.Mode() != state.DetailMode {
		return
	}
	task, ok := m.Board.Task(m.UiState.DetailTask())
	if !ok {
		m.UiState.CloseOverlay()
		return
	}

	width := m.panelWidth()
	content := components.DetailContent(task, width)
	room := m.UiState.Height() - 1 - components.DetailChrome()
	m.detail.SetWidth(components.DetailInnerWidth(width))
	m.detail.SetHeight(max(1, min(lipgloss.Height(content), room)))
	m.detail.SetContent(content)
}

// handleEditMode feeds the title editor and saves on submit
func (m Model) handleEditMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "esc":
		m.titleInput.Blur()
		m.UiState.CloseOverlay()
		return m, nil

	case key.Matches(msg, m.keys.SaveForm):
		title := strings.TrimSpace(m.titleInput.Value())
		if title == "" {
			m.NotificationState.Add(state.LevelError, "Title cannot be empty")
			return m, nil
		}
		id := m.UiState.EditTask()
		m.titleInput.Blur()
		m.UiState.CloseOverlay()

		if current, ok := m.Board.Task(id); ok && current.Title == title {
			return m, nil
		}
		return m, m.saveTitle(id, title)
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}
