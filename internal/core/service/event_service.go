package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/innstack/hotel-system/internal/core/domain"
	"github.com/innstack/hotel-system/internal/core/ports"
)

type eventService struct {
	repo ports.EventRepository
	log  zerolog.Logger
}

// NewEventService returns the EventService that persists room status
// audit events. It is driven by the queue dispatcher workers.
func NewEventService(repo ports.EventRepository, log zerolog.Logger) ports.EventService {
	return &eventService{repo: repo, log: log}
}

// Record writes a single audit row. The caller (a dispatcher worker)
// logs failures; the originating request has already completed.
func (s *eventService) Record(ctx context.Context, e domain.RoomStatusEvent) error {
	if err := s.repo.Insert(ctx, &e); err != nil {
		return fmt.Errorf("record room event: %w", err)
	}

	s.log.Debug().
		Str("room_id", e.RoomID).
		Str("from", string(e.OldStatus)).
		Str("to", string(e.NewStatus)).
		Str("source", e.Source).
		Msg("room status event recorded")
	return nil
}
