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

func setupPropertyDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PropertyRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewPropertyRepository(db)
}

func propertyRowColumns() []string {
	return []string{"id", "owner_id", "name", "address", "property_type", "contact_phone", "contact_email", "created_at", "updated_at"}
}

func TestPropertyRepository_FindByID_NotFound(t *testing.T) {
	db, mock, repo := setupPropertyDB(t)
	defer db.Close()

	propertyID := uuid.New().String()
	mock.ExpectQuery(`SELECT .+ FROM properties WHERE id = \$1`).
		WithArgs(propertyID).
		WillReturnError(sql.ErrNoRows)

	p, err := repo.FindByID(context.Background(), propertyID)

	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
	assert.Nil(t, p)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_Update_CoalescesOmittedFields(t *testing.T) {
	db, mock, repo := setupPropertyDB(t)
	defer db.Close()

	propertyID := uuid.New().String()
	ownerID := uuid.New().String()
	now := time.Now()
	name := "Renamed Plaza"

	mock.ExpectQuery(`UPDATE properties SET`).
		WithArgs(propertyID, name, nil, nil, nil, nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(propertyRowColumns()).
			AddRow(propertyID, ownerID, name, "1 Main St", "hotel", "", "", now, now))

	p, err := repo.Update(context.Background(), propertyID, ports.PropertyPatch{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Renamed Plaza", p.Name)
	assert.Equal(t, "1 Main St", p.Address)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_HasAccess(t *testing.T) {
	db, mock, repo := setupPropertyDB(t)
	defer db.Close()

	propertyID := uuid.New().String()
	userID := uuid.New().String()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(propertyID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.HasAccess(context.Background(), propertyID, userID)

	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_AssignManager_Duplicate(t *testing.T) {
	db, mock, repo := setupPropertyDB(t)
	defer db.Close()

	propertyID := uuid.New().String()
	managerID := uuid.New().String()

	mock.ExpectExec(`INSERT INTO property_managers`).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.AssignManager(context.Background(), propertyID, managerID)
	assert.ErrorIs(t, err, domain.ErrAlreadyAssigned)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_AssignManager_UnknownUser(t *testing.T) {
	db, mock, repo := setupPropertyDB(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO property_managers`).
		WillReturnError(&pq.Error{Code: "23503"})

	_, err := repo.AssignManager(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_UnassignManager_Missing(t *testing.T) {
	db, mock, repo := setupPropertyDB(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM property_managers`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UnassignManager(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrAssignmentNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_ListByOwner(t *testing.T) {
	db, mock, repo := setupPropertyDB(t)
	defer db.Close()

	ownerID := uuid.New().String()
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM properties WHERE owner_id = \$1`).
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows(propertyRowColumns()).
			AddRow(uuid.New().String(), ownerID, "Grand Plaza", "1 Main St", "hotel", "", "", now, now))

	properties, err := repo.ListByOwner(context.Background(), ownerID)

	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, ownerID, properties[0].OwnerID)

	require.NoError(t, mock.ExpectationsWereMet())
}
