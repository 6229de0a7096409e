package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/innstack/hotel-system/internal/core/domain"
)

// EventRepository appends to the room_status_events audit table. Rows are
// never updated or deleted.
type EventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Insert(ctx context.Context, e *domain.RoomStatusEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO room_status_events (room_id, old_status, new_status, actor_id, source, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		e.RoomID, string(e.OldStatus), string(e.NewStatus), e.ActorID, e.Source, e.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert room status event: %w", err)
	}
	return nil
}
