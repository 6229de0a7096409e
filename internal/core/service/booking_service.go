package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/innstack/hotel-system/internal/core/domain"
	"github.com/innstack/hotel-system/internal/core/ports"
)

// CheckinTokenStore abstracts the one-time QR token store (Redis). Issue
// returns an opaque token bound to a booking; Redeem consumes it exactly
// once and fails with domain.ErrCheckinTokenInvalid afterwards.
type CheckinTokenStore interface {
	Issue(ctx context.Context, bookingID string, ttl time.Duration) (string, error)
	Redeem(ctx context.Context, token string) (string, error)
}

type BookingService struct {
	bookings   ports.BookingRepository
	rooms      ports.RoomRepository
	properties ports.PropertyRepository
	tokens     CheckinTokenStore
	events     EventSink
	tokenTTL   time.Duration
	logger     zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	rooms ports.RoomRepository,
	properties ports.PropertyRepository,
	tokens CheckinTokenStore,
	events EventSink,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *BookingService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &BookingService{
		bookings:   bookings,
		rooms:      rooms,
		properties: properties,
		tokens:     tokens,
		events:     events,
		tokenTTL:   tokenTTL,
		logger:     logger,
	}
}

// Create books a room over the closed interval [start, end]. The
// availability check and the insert are two separate statements; two
// concurrent callers can both pass the check for overlapping ranges.
func (s *BookingService) Create(ctx context.Context, actor ports.Actor, input ports.CreateBookingInput) (*domain.Booking, error) {
	if input.StartDate.After(input.EndDate) {
		return nil, domain.ErrInvalidDateRange
	}

	room, err := s.rooms.FindByID(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	available, err := s.rooms.ListAvailable(ctx, room.PropertyID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	if !containsRoom(available, room.ID) {
		return nil, domain.ErrRoomUnavailable
	}
	s.logger.Debug().Str("room_id", room.ID).Msg("availability pre-check passed")

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:        uuid.NewString(),
		RoomID:    room.ID,
		UserID:    actor.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    domain.BookingConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.rooms.SetBooking(ctx, room.ID, &booking.ID, domain.RoomReserved); err != nil {
		s.logger.Error().Err(err).Str("room_id", room.ID).Msg("failed to mark room reserved")
	} else {
		s.enqueueEvent(room.ID, room.Status, domain.RoomReserved, actor.UserID, "booking")
	}

	s.logger.Info().Str("booking_id", booking.ID).Str("room_id", room.ID).Msg("booking created")
	return booking, nil
}

// IssueCheckinToken returns a fresh one-time token for a confirmed
// booking. The guest who booked and property staff may request one.
func (s *BookingService) IssueCheckinToken(ctx context.Context, actor ports.Actor, bookingID string) (*ports.CheckinTokenResult, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeBooking(ctx, actor, booking); err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingConfirmed {
		return nil, domain.ErrBookingNotActive
	}

	token, err := s.tokens.Issue(ctx, booking.ID, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &ports.CheckinTokenResult{
		Token:     token,
		BookingID: booking.ID,
		ExpiresAt: time.Now().UTC().Add(s.tokenTTL),
	}, nil
}

// Checkin redeems a one-time token: the booking becomes checked_in and
// its room occupied with the booking reference attached.
func (s *BookingService) Checkin(ctx context.Context, token string) (*domain.Booking, error) {
	bookingID, err := s.tokens.Redeem(ctx, token)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingConfirmed {
		return nil, domain.ErrBookingNotActive
	}

	updated, err := s.bookings.SetStatus(ctx, bookingID, domain.BookingCheckedIn)
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.FindByID(ctx, booking.RoomID)
	if err != nil {
		return nil, err
	}
	if err := s.rooms.SetBooking(ctx, room.ID, &booking.ID, domain.RoomOccupied); err != nil {
		s.logger.Error().Err(err).Str("room_id", room.ID).Msg("failed to mark room occupied")
	} else {
		s.enqueueEvent(room.ID, room.Status, domain.RoomOccupied, booking.UserID, "checkin")
	}

	s.logger.Info().Str("booking_id", bookingID).Str("room_id", room.ID).Msg("guest checked in")
	return updated, nil
}

// Cancel marks the booking cancelled and releases its room.
func (s *BookingService) Cancel(ctx context.Context, actor ports.Actor, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeBooking(ctx, actor, booking); err != nil {
		return nil, err
	}
	if booking.Status == domain.BookingCheckedOut || booking.Status == domain.BookingCancelled {
		return nil, domain.ErrBookingNotActive
	}

	updated, err := s.bookings.SetStatus(ctx, bookingID, domain.BookingCancelled)
	if err != nil {
		return nil, err
	}
	s.releaseRoom(ctx, booking, actor.UserID, "cancel")
	return updated, nil
}

// Checkout closes a checked-in stay and returns the room to available.
func (s *BookingService) Checkout(ctx context.Context, actor ports.Actor, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeBooking(ctx, actor, booking); err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingCheckedIn {
		return nil, domain.ErrBookingNotActive
	}

	updated, err := s.bookings.SetStatus(ctx, bookingID, domain.BookingCheckedOut)
	if err != nil {
		return nil, err
	}
	s.releaseRoom(ctx, booking, actor.UserID, "checkout")
	s.logger.Info().Str("booking_id", bookingID).Msg("guest checked out")
	return updated, nil
}

func (s *BookingService) releaseRoom(ctx context.Context, booking *domain.Booking, actorID, source string) {
	room, err := s.rooms.FindByID(ctx, booking.RoomID)
	if err != nil {
		s.logger.Error().Err(err).Str("room_id", booking.RoomID).Msg("failed to load room for release")
		return
	}
	if err := s.rooms.SetBooking(ctx, room.ID, nil, domain.RoomAvailable); err != nil {
		s.logger.Error().Err(err).Str("room_id", room.ID).Msg("failed to release room")
		return
	}
	s.enqueueEvent(room.ID, room.Status, domain.RoomAvailable, actorID, source)
}

// authorizeBooking allows the guest who owns the booking, the property
// owner, and the property's assigned managers.
func (s *BookingService) authorizeBooking(ctx context.Context, actor ports.Actor, booking *domain.Booking) error {
	if booking.UserID == actor.UserID {
		return nil
	}

	room, err := s.rooms.FindByID(ctx, booking.RoomID)
	if err != nil {
		return err
	}
	property, err := s.properties.FindByID(ctx, room.PropertyID)
	if err != nil {
		return err
	}
	if property.OwnerID == actor.UserID {
		return nil
	}
	ok, err := s.properties.HasAccess(ctx, property.ID, actor.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}

func (s *BookingService) enqueueEvent(roomID string, from, to domain.RoomStatus, actorID, source string) {
	s.events.Enqueue(domain.RoomStatusEvent{
		RoomID:    roomID,
		OldStatus: from,
		NewStatus: to,
		ActorID:   actorID,
		Source:    source,
		Timestamp: time.Now().UTC(),
	})
}

func containsRoom(rooms []domain.Room, id string) bool {
	for _, r := range rooms {
		if r.ID == id {
			return true
		}
	}
	return false
}
