package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/innstack/hotel-system/internal/core/domain"
)

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = "id, room_id, user_id, start_date, end_date, status, created_at, updated_at"

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bookings (id, room_id, user_id, start_date, end_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID, b.RoomID, b.UserID, b.StartDate, b.EndDate, string(b.Status), b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id = $1", id)
	return scanBooking(row)
}

func (r *BookingRepository) SetStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE bookings SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING `+bookingColumns,
		id, string(status), time.Now().UTC(),
	)
	return scanBooking(row)
}

func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var b domain.Booking
	var status string
	err := row.Scan(&b.ID, &b.RoomID, &b.UserID, &b.StartDate, &b.EndDate, &status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	b.Status = domain.BookingStatus(status)
	return &b, nil
}
