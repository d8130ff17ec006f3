package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui/notifications"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// StatusBarProps describes the footer
type StatusBarProps struct {
	Width        int
	Mode         state.Mode
	Dragging     bool
	Connection   state.ConnectionStatus
	Source       state.DataSource
	Notification *state.Notification
}

// RenderStatusBar renders the mode badge and hints on the left and the data
// source on the right. A pending notification replaces the hints.
func RenderStatusBar(p StatusBarProps) string {
	mode := p.Mode.String()
	if p.Dragging {
		mode = "DRAG"
	}
	left := ModeStyle.Render(mode)

	var middle string
	switch {
	case p.Notification != nil:
		middle = " " + notifications.RenderInlineFromState(*p.Notification)
	case p.Dragging:
		middle = StatusBarStyle.Render(" h/l choose column · space drop · esc cancel")
	default:
		middle = StatusBarStyle.Render(" press ? for help")
	}

	right := StatusBarStyle.Render(connectionLabel(p.Connection, p.Source) + " ")

	gap := max(p.Width-lipgloss.Width(left)-lipgloss.Width(middle)-lipgloss.Width(right), 1)
	return left + middle + StatusBarStyle.Render(strings.Repeat(" ", gap)) + right
}

// connectionLabel summarises where data comes from and whether it is live
func connectionLabel(conn state.ConnectionStatus, source state.DataSource) string {
	dot := lipgloss.NewStyle().Background(lipgloss.Color(theme.StatusBarBg))

	switch source {
	case state.SourceMock:
		return dot.Foreground(lipgloss.Color(theme.WarningFg)).Render("●") + StatusBarStyle.Render(" mock data")
	case state.SourceOffline:
		return dot.Foreground(lipgloss.Color(theme.ErrorFg)).Render("●") + StatusBarStyle.Render(" offline")
	case state.SourceLoading:
		return StatusBarStyle.Render("loading…")
	}

	switch conn {
	case state.Connected:
		return dot.Foreground(lipgloss.Color(theme.DropTarget)).Render("●") + StatusBarStyle.Render(" live")
	case state.Reconnecting:
		return dot.Foreground(lipgloss.Color(theme.WarningFg)).Render("●") + StatusBarStyle.Render(" reconnecting")
	default:
		return dot.Foreground(lipgloss.Color(theme.Subtle)).Render("●") + StatusBarStyle.Render(" hub offline (r to refresh)")
	}
}
