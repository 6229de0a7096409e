package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/innstack/hotel-system/internal/core/domain"
	"github.com/innstack/hotel-system/internal/core/ports"
)

// EventSink accepts room status events for asynchronous recording. The
// queue dispatcher implements it; enqueueing must never block a request
// beyond channel capacity.
type EventSink interface {
	Enqueue(e domain.RoomStatusEvent)
}

type RoomService struct {
	rooms      ports.RoomRepository
	properties ports.PropertyRepository
	events     EventSink
	logger     zerolog.Logger
}

func NewRoomService(rooms ports.RoomRepository, properties ports.PropertyRepository, events EventSink, logger zerolog.Logger) *RoomService {
	return &RoomService{rooms: rooms, properties: properties, events: events, logger: logger}
}

// Create adds a single room to a property.
func (s *RoomService) Create(ctx context.Context, actor ports.Actor, propertyID string, input ports.CreateRoomInput) (*domain.Room, error) {
	if err := s.authorize(ctx, actor, propertyID); err != nil {
		return nil, err
	}

	room, err := buildRoom(propertyID, input)
	if err != nil {
		return nil, err
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}

	s.logger.Info().Str("room_id", room.ID).Str("property_id", propertyID).Str("room_number", room.RoomNumber).Msg("room created")
	return room, nil
}

// BulkCreate inserts all rooms in one transaction; any single failure
// (duplicate number, bad reference) rolls back the entire batch.
func (s *RoomService) BulkCreate(ctx context.Context, actor ports.Actor, propertyID string, inputs []ports.CreateRoomInput) ([]domain.Room, error) {
	if err := s.authorize(ctx, actor, propertyID); err != nil {
		return nil, err
	}

	rooms := make([]*domain.Room, 0, len(inputs))
	for _, input := range inputs {
		room, err := buildRoom(propertyID, input)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	if err := s.rooms.CreateBatch(ctx, rooms); err != nil {
		s.logger.Error().Err(err).Str("property_id", propertyID).Int("count", len(rooms)).Msg("bulk room creation rolled back")
		return nil, err
	}

	out := make([]domain.Room, len(rooms))
	for i, r := range rooms {
		out[i] = *r
	}
	s.logger.Info().Str("property_id", propertyID).Int("count", len(out)).Msg("rooms created in bulk")
	return out, nil
}

func (s *RoomService) Get(ctx context.Context, actor ports.Actor, roomID string) (*domain.Room, error) {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actor, room.PropertyID); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) ListByProperty(ctx context.Context, actor ports.Actor, propertyID string) ([]domain.Room, error) {
	if err := s.authorize(ctx, actor, propertyID); err != nil {
		return nil, err
	}
	return s.rooms.ListByProperty(ctx, propertyID)
}

// ListAvailable returns rooms bookable over the closed interval
// [start, end]: status available and no overlapping blocking booking.
// Zero matches is an empty slice, never an error.
func (s *RoomService) ListAvailable(ctx context.Context, propertyID string, start, end time.Time) ([]domain.Room, error) {
	if start.After(end) {
		return nil, domain.ErrInvalidDateRange
	}
	return s.rooms.ListAvailable(ctx, propertyID, start, end)
}

// Update applies a coalesce-style partial update in one statement.
func (s *RoomService) Update(ctx context.Context, actor ports.Actor, roomID string, patch ports.RoomPatch) (*domain.Room, error) {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actor, room.PropertyID); err != nil {
		return nil, err
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, domain.ErrInvalidRoomStatus
	}

	updated, err := s.rooms.Update(ctx, roomID, patch)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil && *patch.Status != room.Status {
		s.events.Enqueue(domain.RoomStatusEvent{
			RoomID:    roomID,
			OldStatus: room.Status,
			NewStatus: *patch.Status,
			ActorID:   actor.UserID,
			Source:    "room_update",
			Timestamp: time.Now().UTC(),
		})
	}
	return updated, nil
}

// SetStatus validates set membership only. Any status may move to any
// other status, and the booking reference is left untouched even when a
// room returns to available.
func (s *RoomService) SetStatus(ctx context.Context, actor ports.Actor, roomID, status string) (*domain.Room, error) {
	newStatus := domain.RoomStatus(status)
	if !newStatus.IsValid() {
		return nil, domain.ErrInvalidRoomStatus
	}

	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actor, room.PropertyID); err != nil {
		return nil, err
	}

	updated, err := s.rooms.SetStatus(ctx, roomID, newStatus)
	if err != nil {
		return nil, err
	}

	s.events.Enqueue(domain.RoomStatusEvent{
		RoomID:    roomID,
		OldStatus: room.Status,
		NewStatus: newStatus,
		ActorID:   actor.UserID,
		Source:    "status_update",
		Timestamp: time.Now().UTC(),
	})

	s.logger.Info().Str("room_id", roomID).Str("from", string(room.Status)).Str("to", status).Msg("room status updated")
	return updated, nil
}

func (s *RoomService) Delete(ctx context.Context, actor ports.Actor, roomID string) error {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, actor, room.PropertyID); err != nil {
		return err
	}
	return s.rooms.Delete(ctx, roomID)
}

func (s *RoomService) authorize(ctx context.Context, actor ports.Actor, propertyID string) error {
	property, err := s.properties.FindByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if property.OwnerID == actor.UserID {
		return nil
	}
	ok, err := s.properties.HasAccess(ctx, propertyID, actor.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}

func buildRoom(propertyID string, input ports.CreateRoomInput) (*domain.Room, error) {
	status := domain.RoomAvailable
	if input.Status != "" {
		status = domain.RoomStatus(input.Status)
		if !status.IsValid() {
			return nil, domain.ErrInvalidRoomStatus
		}
	}

	now := time.Now().UTC()
	return &domain.Room{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		RoomTypeID: input.RoomTypeID,
		RoomNumber: input.RoomNumber,
		Floor:      input.Floor,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
