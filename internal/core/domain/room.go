package domain

import (
	"errors"
	"time"
)

// RoomStatus is the occupancy state of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomReserved    RoomStatus = "reserved"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

var ErrRoomNotFound = errors.New("room not found")
var ErrRoomNumberTaken = errors.New("room number already exists for this property")
var ErrInvalidRoomStatus = errors.New("invalid room status")
var ErrInvalidReference = errors.New("referenced entity does not exist")

// IsValid reports set membership only. Any valid status may move to any
// other valid status; there is intentionally no transition matrix.
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomAvailable, RoomReserved, RoomOccupied, RoomMaintenance:
		return true
	}
	return false
}

// Room belongs to exactly one property. RoomNumber is unique within that
// property, enforced by a database constraint and surfaced as a conflict.
type Room struct {
	ID         string     `json:"id"`
	PropertyID string     `json:"property_id"`
	RoomTypeID *string    `json:"room_type_id,omitempty"`
	RoomNumber string     `json:"room_number"`
	Floor      int        `json:"floor"`
	Status     RoomStatus `json:"status"`
	BookingID  *string    `json:"booking_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
