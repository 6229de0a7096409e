package domain

import (
	"errors"
	"time"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCancelled  BookingStatus = "cancelled"
	BookingCheckedOut BookingStatus = "checked_out"
)

var ErrBookingNotFound = errors.New("booking not found")
var ErrInvalidDateRange = errors.New("start date must not be after end date")
var ErrRoomUnavailable = errors.New("room is not available for the requested dates")
var ErrBookingNotActive = errors.New("booking is not in an active state")
var ErrCheckinTokenInvalid = errors.New("check-in token is invalid or already used")

// Booking reserves a room for a user over a closed date interval.
// Stay dates are calendar days; both endpoints are inclusive.
type Booking struct {
	ID        string        `json:"id"`
	RoomID    string        `json:"room_id"`
	UserID    string        `json:"user_id"`
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Blocks reports whether this booking makes its room unusable for a stay
// over [start, end]. Cancelled and checked-out bookings never block.
// Closed intervals intersect iff start1 <= end2 && start2 <= end1.
func (b Booking) Blocks(start, end time.Time) bool {
	if b.Status == BookingCancelled || b.Status == BookingCheckedOut {
		return false
	}
	return !b.StartDate.After(end) && !start.After(b.EndDate)
}
