package ports

import (
	"context"

	"github.com/innstack/hotel-system/internal/core/domain"
)

// EventRepository persists room status audit events.
type EventRepository interface {
	Insert(ctx context.Context, e *domain.RoomStatusEvent) error
}

// EventService records one room status event. Implementations are invoked
// by the dispatcher workers, never directly by a request handler.
type EventService interface {
	Record(ctx context.Context, e domain.RoomStatusEvent) error
}
