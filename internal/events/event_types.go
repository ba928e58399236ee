package events

import "time"

// EventType enumerates audit events emitted by the auth flows.
type EventType string

const (
	EventUserRegistered EventType = "UserRegistered"
	EventLoginSucceeded EventType = "LoginSucceeded"
	EventLoginRejected  EventType = "LoginRejected"
)

// Event carries audit context for a single auth occurrence. Username may be
// attacker-supplied on rejections; it is for server-side logs only.
type Event struct {
	Type       EventType
	Username   string
	OccurredAt time.Time
	Payload    map[string]any
}
