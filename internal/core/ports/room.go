package ports

import (
	"context"
	"time"

	"github.com/innstack/hotel-system/internal/core/domain"
)

// CreateRoomInput carries the data for one new room.
type CreateRoomInput struct {
	RoomNumber string
	Floor      int
	RoomTypeID *string
	Status     string // optional; defaults to "available"
}

// RoomPatch holds a partial room update. Nil fields keep their previous
// value (coalesce-style merge, applied atomically in one statement).
type RoomPatch struct {
	RoomNumber *string
	Floor      *int
	RoomTypeID *string
	Status     *domain.RoomStatus
}

// RoomRepository defines persistence operations for rooms.
type RoomRepository interface {
	Create(ctx context.Context, r *domain.Room) error
	// CreateBatch inserts all rooms in a single transaction. Any failure
	// rolls back the whole batch.
	CreateBatch(ctx context.Context, rooms []*domain.Room) error
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	ListByProperty(ctx context.Context, propertyID string) ([]domain.Room, error)
	// ListAvailable returns rooms of the property with status available and
	// no blocking booking overlapping the closed interval [start, end].
	ListAvailable(ctx context.Context, propertyID string, start, end time.Time) ([]domain.Room, error)
	Update(ctx context.Context, id string, patch RoomPatch) (*domain.Room, error)
	// SetStatus updates only the status column; the booking reference is
	// deliberately left untouched.
	SetStatus(ctx context.Context, id string, status domain.RoomStatus) (*domain.Room, error)
	// SetBooking atomically sets the booking reference and status, used by
	// check-in and check-out.
	SetBooking(ctx context.Context, id string, bookingID *string, status domain.RoomStatus) error
	Delete(ctx context.Context, id string) error
}

// RoomService defines use-case operations for rooms.
type RoomService interface {
	Create(ctx context.Context, actor Actor, propertyID string, input CreateRoomInput) (*domain.Room, error)
	BulkCreate(ctx context.Context, actor Actor, propertyID string, inputs []CreateRoomInput) ([]domain.Room, error)
	Get(ctx context.Context, actor Actor, roomID string) (*domain.Room, error)
	ListByProperty(ctx context.Context, actor Actor, propertyID string) ([]domain.Room, error)
	ListAvailable(ctx context.Context, propertyID string, start, end time.Time) ([]domain.Room, error)
	Update(ctx context.Context, actor Actor, roomID string, patch RoomPatch) (*domain.Room, error)
	SetStatus(ctx context.Context, actor Actor, roomID, status string) (*domain.Room, error)
	Delete(ctx context.Context, actor Actor, roomID string) error
}
