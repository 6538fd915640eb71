package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the kind of change (created, updated, deleted).
type EventType string

const (
	EventTypeCreated  EventType = "created"
	EventTypeUpdated  EventType = "updated"
	EventTypeDeleted  EventType = "deleted"
	EventTypeImported EventType = "imported"
	EventTypeSelected EventType = "selected"
)

// EntityType represents what the event is about.
type EntityType string

const (
	EntityTypeTransaction EntityType = "transaction"
	EntityTypeSettings    EntityType = "settings"
	EntityTypeDatabase    EntityType = "database"
	EntityTypeReceipt     EntityType = "receipt"
	EntityTypeData        EntityType = "data"
)

// Event is a change notification sent to connected dashboard clients.
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"` // combined type e.g. "transaction.created"
	Entity    EntityType  `json:"entity"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a new event with the given type, entity, and payload.
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes.
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
