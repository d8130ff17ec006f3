package state

import "sync"

// ConnectionStatus represents the current connection state to the event hub
type ConnectionStatus int

const (
	Disconnected ConnectionStatus = iota
	Connected
	Reconnecting
)

// String returns a human-readable string representation of the connection status
func (cs ConnectionStatus) String() string {
	switch cs {
	case Connected:
		return "Connected"
	case Disconnected:
		return "Disconnected"
	case Reconnecting:
		return "Reconnecting"
	default:
		return "Unknown"
	}
}

// DataSource says where the tasks on screen came from
type DataSource int

const (
	SourceLoading DataSource = iota
	SourceLive
	SourceMock
	SourceOffline
)

// String returns a human-readable string representation of the data source
func (ds DataSource) String() string {
	switch ds {
	case SourceLoading:
		return "loading"
	case SourceLive:
		return "live"
	case SourceMock:
		return "mock data"
	case SourceOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// ConnectionState tracks the hub connection and the origin of the loaded tasks
type ConnectionState struct {
	mu     sync.RWMutex
	status ConnectionStatus
	source DataSource
}

// NewConnectionState creates a new ConnectionState with the given initial status
func NewConnectionState(initialStatus ConnectionStatus) *ConnectionState {
	return &ConnectionState{
		status: initialStatus,
		source: SourceLoading,
	}
}

// Status returns the current connection status (thread-safe)
func (cs *ConnectionState) Status() ConnectionStatus {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.status
}

// SetStatus updates the connection status (thread-safe)
func (cs *ConnectionState) SetStatus(status ConnectionStatus) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.status = status
}

// Source returns where the current tasks came from (thread-safe)
func (cs *ConnectionState) Source() DataSource {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.source
}

// SetSource records where the current tasks came from (thread-safe)
func (cs *ConnectionState) SetSource(source DataSource) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.source = source
}
