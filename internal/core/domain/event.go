package domain

import "time"

// RoomStatusEvent is one row of the append-only room status audit trail.
// Events are recorded asynchronously; a lost event never fails the request
// that produced it.
type RoomStatusEvent struct {
	RoomID    string     `json:"room_id"`
	OldStatus RoomStatus `json:"old_status"`
	NewStatus RoomStatus `json:"new_status"`
	ActorID   string     `json:"actor_id,omitempty"`
	Source    string     `json:"source"`
	Timestamp time.Time  `json:"timestamp"`
}
