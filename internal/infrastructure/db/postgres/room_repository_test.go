package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innstack/hotel-system/internal/core/domain"
	"github.com/innstack/hotel-system/internal/core/ports"
)

func setupRoomDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *RoomRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewRoomRepository(db)
}

func roomRowColumns() []string {
	return []string{"id", "property_id", "room_type_id", "room_number", "floor", "status", "booking_id", "created_at", "updated_at"}
}

func TestRoomRepository_FindByID_Success(t *testing.T) {
	db, mock, repo := setupRoomDB(t)
	defer db.Close()

	roomID := uuid.New().String()
	propertyID := uuid.New().String()
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM rooms WHERE id = \$1`).
		WithArgs(roomID).
		WillReturnRows(sqlmock.NewRows(roomRowColumns()).
			AddRow(roomID, propertyID, nil, "101", 1, "available", nil, now, now))

	room, err := repo.FindByID(context.Background(), roomID)

	require.NoError(t, err)
	assert.Equal(t, roomID, room.ID)
	assert.Equal(t, "101", room.RoomNumber)
	assert.Equal(t, domain.RoomAvailable, room.Status)
	assert.Nil(t, room.BookingID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_FindByID_NotFound(t *testing.T) {
	db, mock, repo := setupRoomDB(t)
	defer db.Close()

	roomID := uuid.New().String()
	mock.ExpectQuery(`SELECT .+ FROM rooms WHERE id = \$1`).
		WithArgs(roomID).
		WillReturnError(sql.ErrNoRows)

	room, err := repo.FindByID(context.Background(), roomID)

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	assert.Nil(t, room)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_ListAvailable_PassesDateRange(t *testing.T) {
	db, mock, repo := setupRoomDB(t)
	defer db.Close()

	propertyID := uuid.New().String()
	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(`NOT EXISTS`).
		WithArgs(propertyID, start, end).
		WillReturnRows(sqlmock.NewRows(roomRowColumns()).
			AddRow(uuid.New().String(), propertyID, nil, "101", 1, "available", nil, now, now).
			AddRow(uuid.New().String(), propertyID, nil, "102", 1, "available", nil, now, now))

	rooms, err := repo.ListAvailable(context.Background(), propertyID, start, end)

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].RoomNumber)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_ListAvailable_EmptyResult(t *testing.T) {
	db, mock, repo := setupRoomDB(t)
	defer db.Close()

	propertyID := uuid.New().String()
	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`NOT EXISTS`).
		WithArgs(propertyID, start, end).
		WillReturnRows(sqlmock.NewRows(roomRowColumns()))

	rooms, err := repo.ListAvailable(context.Background(), propertyID, start, end)

	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_Create_UniqueViolation(t *testing.T) {
	db, mock, repo := setupRoomDB(t)
	defer db.Close()

	room := &domain.Room{ID: uuid.New().String(), PropertyID: uuid.New().String(), RoomNumber: "101", Status: domain.RoomAvailable}

	mock.ExpectExec(`INSERT INTO rooms`).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), room)
	assert.ErrorIs(t, err, domain.ErrRoomNumberTaken)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_Create_ForeignKeyViolation(t *testing.T) {
	db, mock, repo := setupRoomDB(t)
	defer db.Close()

	room := &domain.Room{ID: uuid.New().String(), PropertyID: uuid.New().String(), RoomNumber: "101", Status: domain.RoomAvailable}

	mock.ExpectExec(`INSERT INTO rooms`).
		WillReturnError(&pq.Error{Code: "23503"})

	err := repo.Create(context.Background(), room)
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_CreateBatch_CommitsAll(t *testing.T) {
	db, mock, repo := setupRoomDB(t)
	defer db.Close()

	propertyID := uuid.New().String()
	rooms := []*domain.Room{
		{ID: uuid.New().String(), PropertyID: propertyID, RoomNumber: "101", Status: domain.RoomAvailable},
		{ID: uuid.New().String(), PropertyID: propertyID, RoomNumber: "102", Status: domain.RoomAvailable},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO rooms`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO rooms`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateBatch(context.Background(), rooms)
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_CreateBatch_RollsBackOnDuplicate(t *testing.T) {
	db, mock, repo := setupRoomDB(t)
	defer db.Close()

	propertyID := uuid.New().String()
	rooms := []*domain.Room{
		{ID: uuid.New().String(), PropertyID: propertyID, RoomNumber: "101", Status: domain.RoomAvailable},
		{ID: uuid.New().String(), PropertyID: propertyID, RoomNumber: "101", Status: domain.RoomAvailable},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO rooms`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO rooms`).WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	err := repo.CreateBatch(context.Background(), rooms)
	assert.ErrorIs(t, err, domain.ErrRoomNumberTaken)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_Update_CoalescesOmittedFields(t *testing.T) {
	db, mock, repo := setupRoomDB(t)
	defer db.Close()

	roomID := uuid.New().String()
	propertyID := uuid.New().String()
	now := time.Now()
	floor := 3

	// Only floor is set; every other parameter must be passed as NULL so
	// COALESCE keeps the stored value.
	mock.ExpectQuery(`UPDATE rooms SET`).
		WithArgs(roomID, nil, floor, nil, nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(roomRowColumns()).
			AddRow(roomID, propertyID, nil, "101", 3, "available", nil, now, now))

	room, err := repo.Update(context.Background(), roomID, ports.RoomPatch{Floor: &floor})

	require.NoError(t, err)
	assert.Equal(t, 3, room.Floor)
	assert.Equal(t, "101", room.RoomNumber)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_SetStatus_LeavesBookingUntouched(t *testing.T) {
	db, mock, repo := setupRoomDB(t)
	defer db.Close()

	roomID := uuid.New().String()
	propertyID := uuid.New().String()
	bookingID := uuid.New().String()
	now := time.Now()

	mock.ExpectQuery(`UPDATE rooms SET status = \$2`).
		WithArgs(roomID, "available", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(roomRowColumns()).
			AddRow(roomID, propertyID, nil, "101", 1, "available", bookingID, now, now))

	room, err := repo.SetStatus(context.Background(), roomID, domain.RoomAvailable)

	require.NoError(t, err)
	assert.Equal(t, domain.RoomAvailable, room.Status)
	require.NotNil(t, room.BookingID)
	assert.Equal(t, bookingID, *room.BookingID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_SetBooking_NotFound(t *testing.T) {
	db, mock, repo := setupRoomDB(t)
	defer db.Close()

	roomID := uuid.New().String()

	mock.ExpectExec(`UPDATE rooms SET booking_id`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetBooking(context.Background(), roomID, nil, domain.RoomAvailable)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
