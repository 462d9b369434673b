package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "rag.index_rebuilt"). On
	// the bus it is published under "events." + EventType().
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the concrete event used for both published and received messages.
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

const (
	// TypeIndexRebuilt is published on events.rag.index_rebuilt after every committed rebuild.
	TypeIndexRebuilt = "rag.index_rebuilt"
)

func NewIndexRebuilt(chunks, embedded int, trigger string, at time.Time) BaseEvent {
	return BaseEvent{
		Type: TypeIndexRebuilt,
		Data: map[string]interface{}{
			"chunks":   chunks,
			"embedded": embedded,
			"trigger":  trigger,
			"built_at": at.Format(time.RFC3339),
		},
		OccurredAt: at,
	}
}
