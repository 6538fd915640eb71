package websocket

// EventPublisher defines the interface for publishing change events to
// connected clients.
type EventPublisher interface {
	Publish(event Event)
}

// Ensure Hub implements EventPublisher
var _ EventPublisher = (*Hub)(nil)

// Publish implements EventPublisher by broadcasting to all clients.
func (h *Hub) Publish(event Event) {
	h.Broadcast(event)
}

// NoOpPublisher is a publisher that does nothing (for tests or when the
// WebSocket surface is disabled).
type NoOpPublisher struct{}

// Publish does nothing.
func (n *NoOpPublisher) Publish(event Event) {}
