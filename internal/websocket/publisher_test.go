package websocket

import "testing"

func TestNoOpPublisher_Publish(t *testing.T) {
	publisher := &NoOpPublisher{}

	// Should not panic
	publisher.Publish(NewEvent(EventTypeCreated, EntityTypeTransaction, map[string]interface{}{"id": "t1"}))
}

func TestNoOpPublisher_Implements_EventPublisher(t *testing.T) {
	// Compile-time check that NoOpPublisher implements EventPublisher
	var _ EventPublisher = (*NoOpPublisher)(nil)
}
