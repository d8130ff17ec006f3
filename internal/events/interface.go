package events

import "context"

// Sender is the write half of the hub protocol. Both the socket client
// and the in-process hub satisfy it.
type Sender interface {
	// SendEvent queues an event for broadcast
	SendEvent(event Event) error
}

// EventPublisher defines the interface for sending and receiving events.
type EventPublisher interface {
	Sender

	// Connect establishes a connection to the hub socket
	Connect(ctx context.Context) error

	// Listen starts listening for events from the hub
	Listen(ctx context.Context) (<-chan Event, error)

	// Close closes the connection and stops all goroutines
	Close() error
}

// Compile-time verification that *Client implements EventPublisher
var _ EventPublisher = (*Client)(nil)
