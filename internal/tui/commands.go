package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/models"
)

// requestTimeout bounds loads and title saves issued by the UI
const requestTimeout = 15 * time.Second

// loadTasks fetches a snapshot off the UI loop
func (m Model) loadTasks() tea.Cmd {
	if m.source == nil {
		return nil
	}
	ctx, source := m.Ctx, m.source

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		snap, err := source.Load(ctx)
		if err != nil {
			return loadFailedMsg{Err: err}
		}
		return tasksLoadedMsg{Snapshot: snap}
	}
}

// listenEvents subscribes to the hub once
func (m Model) listenEvents() tea.Cmd {
	if m.events == nil {
		return nil
	}
	ctx, listener := m.Ctx, m.events

	return func() tea.Msg {
		ch, err := listener.Listen(ctx)
		if err != nil {
			return hubUnavailableMsg{Err: err}
		}
		return hubListeningMsg{ch: ch}
	}
}

// SubscribeToEvents returns a command that waits for the next hub event.
// Returns nil if EventChan is not initialized.
func (m Model) SubscribeToEvents() tea.Cmd {
	if m.EventChan == nil {
		return nil
	}
	ctx, ch := m.Ctx, m.EventChan

	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return hubClosedMsg{}
			}
			return RefreshMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}

// waitForStatusResult delivers the next notifier outcome
func (m Model) waitForStatusResult() tea.Cmd {
	ctx, ch := m.Ctx, m.statusResults

	return func() tea.Msg {
		select {
		case res := <-ch:
			return res
		case <-ctx.Done():
			return nil
		}
	}
}

// saveTitle persists a title edit; the board picks it up on the following resync
func (m Model) saveTitle(id models.TaskID, title string) tea.Cmd {
	if m.titles == nil {
		return nil
	}
	ctx, titles := m.Ctx, m.titles

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		_, err := titles.UpdateTaskTitle(ctx, id, title)
		return titleSavedMsg{ID: id, Title: title, Err: err}
	}
}
