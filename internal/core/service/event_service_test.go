package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/innstack/hotel-system/internal/core/domain"
)

type stubEventRepo struct {
	inserted  []domain.RoomStatusEvent
	insertErr error
}

func (r *stubEventRepo) Insert(_ context.Context, e *domain.RoomStatusEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, *e)
	return nil
}

func TestEventService_Record_Success(t *testing.T) {
	repo := &stubEventRepo{}
	svc := NewEventService(repo, discardLogger)

	err := svc.Record(context.Background(), domain.RoomStatusEvent{
		RoomID:    "room_1",
		OldStatus: domain.RoomAvailable,
		NewStatus: domain.RoomOccupied,
		Source:    "checkin",
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 inserted event, got %d", len(repo.inserted))
	}
	if repo.inserted[0].RoomID != "room_1" {
		t.Errorf("wrong room id: %q", repo.inserted[0].RoomID)
	}
}

func TestEventService_Record_WrapsRepoError(t *testing.T) {
	cause := errors.New("db unavailable")
	repo := &stubEventRepo{insertErr: cause}
	svc := NewEventService(repo, discardLogger)

	err := svc.Record(context.Background(), domain.RoomStatusEvent{RoomID: "room_1"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
}
