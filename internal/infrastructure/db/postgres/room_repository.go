package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/innstack/hotel-system/internal/core/domain"
	"github.com/innstack/hotel-system/internal/core/ports"
)

type RoomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

const roomColumns = "id, property_id, room_type_id, room_number, floor, status, booking_id, created_at, updated_at"

const insertRoomSQL = `
	INSERT INTO rooms (id, property_id, room_type_id, room_number, floor, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	_, err := r.db.ExecContext(ctx, insertRoomSQL,
		room.ID, room.PropertyID, room.RoomTypeID, room.RoomNumber, room.Floor, string(room.Status), room.CreatedAt, room.UpdatedAt,
	)
	return translateRoomWriteErr(err)
}

// CreateBatch inserts all rooms in a single transaction. Any failure
// aborts and rolls back the whole batch.
func (r *RoomRepository) CreateBatch(ctx context.Context, rooms []*domain.Room) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin bulk insert: %w", err)
	}

	for _, room := range rooms {
		_, err := tx.ExecContext(ctx, insertRoomSQL,
			room.ID, room.PropertyID, room.RoomTypeID, room.RoomNumber, room.Floor, string(room.Status), room.CreatedAt, room.UpdatedAt,
		)
		if err != nil {
			_ = tx.Rollback()
			return translateRoomWriteErr(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit bulk insert: %w", err)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+roomColumns+" FROM rooms WHERE id = $1", id)
	return scanRoomNotFound(row)
}

func (r *RoomRepository) ListByProperty(ctx context.Context, propertyID string) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+roomColumns+" FROM rooms WHERE property_id = $1 ORDER BY room_number", propertyID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()
	return collectRooms(rows)
}

// ListAvailable returns rooms with status available and no blocking
// booking whose date range intersects [start, end]. Closed intervals
// intersect iff start1 <= end2 AND start2 <= end1; cancelled and
// checked-out bookings never block.
func (r *RoomRepository) ListAvailable(ctx context.Context, propertyID string, start, end time.Time) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+roomColumns+`
		FROM rooms r
		WHERE r.property_id = $1
		  AND r.status = 'available'
		  AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_id = r.id
			  AND b.status NOT IN ('cancelled', 'checked_out')
			  AND b.start_date <= $3
			  AND b.end_date >= $2
		  )
		ORDER BY r.room_number`,
		propertyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list available rooms: %w", err)
	}
	defer rows.Close()
	return collectRooms(rows)
}

// Update applies a coalesce-style merge in one statement: every NULL
// argument keeps the stored value.
func (r *RoomRepository) Update(ctx context.Context, id string, patch ports.RoomPatch) (*domain.Room, error) {
	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE rooms SET
			room_number  = COALESCE($2, room_number),
			floor        = COALESCE($3, floor),
			room_type_id = COALESCE($4, room_type_id),
			status       = COALESCE($5, status),
			updated_at   = $6
		WHERE id = $1
		RETURNING `+roomColumns,
		id, patch.RoomNumber, patch.Floor, patch.RoomTypeID, status, time.Now().UTC(),
	)

	room, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, translateRoomWriteErr(err)
	}
	return room, nil
}

// SetStatus updates the status column only; booking_id is deliberately
// left untouched.
func (r *RoomRepository) SetStatus(ctx context.Context, id string, status domain.RoomStatus) (*domain.Room, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE rooms SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING `+roomColumns,
		id, string(status), time.Now().UTC(),
	)
	return scanRoomNotFound(row)
}

// SetBooking atomically sets the booking reference and status.
func (r *RoomRepository) SetBooking(ctx context.Context, id string, bookingID *string, status domain.RoomStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE rooms SET booking_id = $2, status = $3, updated_at = $4
		WHERE id = $1`,
		id, bookingID, string(status), time.Now().UTC(),
	)
	if err != nil {
		return translateRoomWriteErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM rooms WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

// translateRoomWriteErr maps constraint violations onto domain errors:
// unique (property_id, room_number) → conflict, bad property/room type
// reference → invalid reference.
func translateRoomWriteErr(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return domain.ErrRoomNumberTaken
	}
	if isForeignKeyViolation(err) {
		return domain.ErrInvalidReference
	}
	return fmt.Errorf("room write: %w", err)
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room
	var status string
	err := row.Scan(&room.ID, &room.PropertyID, &room.RoomTypeID, &room.RoomNumber, &room.Floor, &status, &room.BookingID, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return nil, err
	}
	room.Status = domain.RoomStatus(status)
	return &room, nil
}

func scanRoomNotFound(row *sql.Row) (*domain.Room, error) {
	room, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("scan room: %w", err)
	}
	return room, nil
}

func collectRooms(rows *sql.Rows) ([]domain.Room, error) {
	rooms := []domain.Room{}
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, *room)
	}
	return rooms, rows.Err()
}
