package tui

import (
	"github.com/thenoetrevino/tablero/internal/api"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
)

// tasksLoadedMsg carries a fresh snapshot for a wholesale resync
type tasksLoadedMsg struct {
	Snapshot api.Snapshot
}

// loadFailedMsg reports that no snapshot could be produced
type loadFailedMsg struct {
	Err error
}

// RefreshMsg is sent when the hub reports a change on the backend
type RefreshMsg struct {
	Event events.Event
}

// hubListeningMsg hands the subscription channel to the model
type hubListeningMsg struct {
	ch <-chan events.Event
}

// hubUnavailableMsg means Listen failed; the board keeps working without live updates
type hubUnavailableMsg struct {
	Err error
}

// hubClosedMsg means the event channel closed
type hubClosedMsg struct{}

// statusResultMsg is the outcome of a fire-and-forget status notification
type statusResultMsg struct {
	ID     models.TaskID
	Status models.Status
	Err    error
}

// titleSavedMsg is the outcome of a title edit
type titleSavedMsg struct {
	ID    models.TaskID
	Title string
	Err   error
}
