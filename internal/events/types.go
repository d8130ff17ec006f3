package events

import (
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

// ProtocolVersion is carried on every message so mismatched peers can be logged
const ProtocolVersion = 1

// EventType indicates what kind of change occurred
type EventType string

const (
	// EventTasksChanged means the task collection changed on the backend
	EventTasksChanged EventType = "tasks_changed"
	EventPing         EventType = "ping"
	EventPong         EventType = "pong"
)

// Wire message types
const (
	MessageEvent = "event"
	MessagePing  = "ping"
	MessagePong  = "pong"
)

// Event represents a task change notification
type Event struct {
	Type EventType
	// TaskID is the single task that changed, or 0 for a bulk change
	TaskID models.TaskID `json:",omitempty"`
	// Status is the new status when the change was a move
	Status     models.Status `json:",omitempty"`
	Timestamp  time.Time
	SequenceID int64 // Monotonically increasing, assigned by the hub
}

// Message wraps events and control messages for the wire protocol
type Message struct {
	Version int
	Type    string
	Event   *Event `json:",omitempty"`
}
