package ports

import (
	"context"
	"time"

	"github.com/innstack/hotel-system/internal/core/domain"
)

// CreateBookingInput carries the data for a new booking. Dates are
// calendar days, both endpoints inclusive.
type CreateBookingInput struct {
	RoomID    string
	StartDate time.Time
	EndDate   time.Time
}

// CheckinTokenResult is returned when a one-time check-in token is issued.
// The client renders the QR code from Token; the server never produces an
// image.
type CheckinTokenResult struct {
	Token     string
	BookingID string
	ExpiresAt time.Time
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	SetStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}

// BookingService defines use-case operations for bookings and QR check-in.
type BookingService interface {
	Create(ctx context.Context, actor Actor, input CreateBookingInput) (*domain.Booking, error)
	IssueCheckinToken(ctx context.Context, actor Actor, bookingID string) (*CheckinTokenResult, error)
	Checkin(ctx context.Context, token string) (*domain.Booking, error)
	Cancel(ctx context.Context, actor Actor, bookingID string) (*domain.Booking, error)
	Checkout(ctx context.Context, actor Actor, bookingID string) (*domain.Booking, error)
}
