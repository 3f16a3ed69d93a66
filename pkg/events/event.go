package events

import "time"

const (
	TypeViewInvalidated = "VIEW_INVALIDATED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "VIEW_INVALIDATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func NewViewInvalidated(path string, at time.Time) BaseEvent {
	return BaseEvent{
		Type: TypeViewInvalidated,
		Data: map[string]interface{}{
			"path":        path,
			"occurred_at": at,
		},
		OccurredAt: at,
	}
}
