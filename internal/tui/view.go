package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/notifications"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// View renders the current state of the application
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render builds the full screen as a string
func (m Model) render() string {
	if m.UiState.Width() == 0 {
		return "Loading..."
	}

	switch m.UiState.Mode() {
	case state.HelpMode:
		return m.overlay(components.HelpBoxStyle.Render(
			components.TitleStyle.Render("Keyboard shortcuts") + "\n\n" + m.help.View(m.keys)))
	case state.DetailMode:
		if _, ok := m.Board.Task(m.UiState.DetailTask()); ok {
			return m.overlay(components.RenderDetail(m.detail.View(), m.panelWidth(), m.detailScroll()))
		}
	case state.EditMode:
		if task, ok := m.Board.Task(m.UiState.EditTask()); ok {
			return m.overlay(components.RenderEditor(task, m.titleInput.View(), m.panelWidth()))
		}
	}

	if m.ConnectionState.Source() == state.SourceOffline && len(m.Board.Tasks()) == 0 {
		return m.overlay(notifications.Render(notifications.Error,
			"Could not load tasks. Press "+m.keys.Refresh.Help().Key+" to retry."))
	}

	return m.renderBoard()
}

// panelWidth is the width of centred panels
func (m Model) panelWidth() int {
	return min(m.UiState.Width()-4, 80)
}

// detailScroll is the scroll position shown when the description overflows
func (m Model) detailScroll() string {
	if m.detail.TotalLineCount() <= m.detail.VisibleLineCount() {
		return ""
	}
	return fmt.Sprintf("%d%%", int(m.detail.ScrollPercent()*100))
}

// overlay centres a panel above the status bar
func (m Model) overlay(panel string) string {
	height := max(m.UiState.Height()-1, lipgloss.Height(panel))
	body := lipgloss.Place(m.UiState.Width(), height, lipgloss.Center, lipgloss.Center, panel)
	return body + "\n" + m.renderStatusBar()
}

// renderBoard renders header, the visible columns and the status bar
func (m Model) renderBoard() string {
	cols := m.Board.Columns()
	order := cols.Order()

	header := components.RenderHeader(components.HeaderProps{
		Layout: m.Board.Layout(),
		Total:  cols.Len() + cols.HiddenLen(),
		Hidden: cols.HiddenLen(),
		Width:  m.UiState.Width(),
	})

	var dragging models.TaskID
	if task, ok := m.Board.ActiveTask(); ok {
		dragging = task.ID
	}
	isDragging := m.Board.Dragging()

	start := m.UiState.ViewportOffset()
	end := min(start+m.UiState.ViewportSize(), len(order))
	height := m.UiState.ContentHeight()

	var rendered []string
	if start > 0 {
		rendered = append(rendered, components.IndicatorStyle.Render("◀"))
	} else {
		rendered = append(rendered, " ")
	}
	for idx := start; idx < end; idx++ {
		status := order[idx]
		selectedTask := -1
		if idx == m.UiState.SelectedColumn() {
			selectedTask = m.UiState.SelectedTask()
		}
		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Status:       status,
			Tasks:        cols.Bucket(status),
			Selected:     !isDragging && idx == m.UiState.SelectedColumn(),
			SelectedTask: selectedTask,
			DropTarget:   isDragging && idx == m.UiState.HoverColumn(),
			Dragging:     dragging,
			Height:       height,
			ScrollOffset: m.UiState.TaskScrollOffset(status),
		}))
		if idx < end-1 {
			rendered = append(rendered, strings.Repeat(" ", state.ColumnSpacing))
		}
	}
	if end < len(order) {
		rendered = append(rendered, components.IndicatorStyle.Render("▶"))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	return strings.Join([]string{header, "", board, "", m.renderStatusBar()}, "\n")
}

// renderStatusBar renders the footer from the pointer states
func (m Model) renderStatusBar() string {
	props := components.StatusBarProps{
		Width:      m.UiState.Width(),
		Mode:       m.UiState.Mode(),
		Dragging:   m.Board.Dragging(),
		Connection: m.ConnectionState.Status(),
		Source:     m.ConnectionState.Source(),
	}
	if n, ok := m.NotificationState.Latest(); ok {
		props.Notification = &n
	}
	return components.RenderStatusBar(props)
}
