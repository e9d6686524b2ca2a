package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHAT_RESOLVED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a plain implementation for events that carry a flat payload.
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

// NewChatResolved builds the event published after each handled chat turn.
func NewChatResolved(sessionID, intent, bank, responseType string) Event {
	return BaseEvent{
		Type: "CHAT_RESOLVED",
		Data: map[string]interface{}{
			"session_id":    sessionID,
			"intent":        intent,
			"bank":          bank,
			"response_type": responseType,
		},
		OccurredAt: time.Now(),
	}
}
