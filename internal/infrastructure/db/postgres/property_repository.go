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

type PropertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

const propertyColumns = "id, owner_id, name, address, property_type, contact_phone, contact_email, created_at, updated_at"

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO properties (id, owner_id, name, address, property_type, contact_phone, contact_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.OwnerID, p.Name, p.Address, p.PropertyType, p.ContactPhone, p.ContactEmail, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+propertyColumns+" FROM properties WHERE id = $1", id)

	p, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update applies a coalesce-style partial update: every NULL argument
// keeps the stored value. One statement, atomic.
func (r *PropertyRepository) Update(ctx context.Context, id string, patch ports.PropertyPatch) (*domain.Property, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE properties SET
			name          = COALESCE($2, name),
			address       = COALESCE($3, address),
			property_type = COALESCE($4, property_type),
			contact_phone = COALESCE($5, contact_phone),
			contact_email = COALESCE($6, contact_email),
			updated_at    = $7
		WHERE id = $1
		RETURNING `+propertyColumns,
		id, patch.Name, patch.Address, patch.PropertyType, patch.ContactPhone, patch.ContactEmail, time.Now().UTC(),
	)

	p, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM properties WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+propertyColumns+" FROM properties WHERE owner_id = $1 ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, fmt.Errorf("list properties by owner: %w", err)
	}
	defer rows.Close()
	return collectProperties(rows)
}

func (r *PropertyRepository) ListByManager(ctx context.Context, managerID string) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.owner_id, p.name, p.address, p.property_type, p.contact_phone, p.contact_email, p.created_at, p.updated_at
		FROM properties p
		JOIN property_managers pm ON pm.property_id = p.id
		WHERE pm.manager_id = $1
		ORDER BY pm.created_at DESC`, managerID)
	if err != nil {
		return nil, fmt.Errorf("list properties by manager: %w", err)
	}
	defer rows.Close()
	return collectProperties(rows)
}

// HasAccess reports whether userID owns the property or is assigned as
// one of its managers, in a single query.
func (r *PropertyRepository) HasAccess(ctx context.Context, propertyID, userID string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM properties WHERE id = $1 AND owner_id = $2
			UNION ALL
			SELECT 1 FROM property_managers WHERE property_id = $1 AND manager_id = $2
		)`, propertyID, userID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check property access: %w", err)
	}
	return ok, nil
}

func (r *PropertyRepository) AssignManager(ctx context.Context, propertyID, managerID string) (*domain.ManagerAssignment, error) {
	assignment := &domain.ManagerAssignment{
		PropertyID: propertyID,
		ManagerID:  managerID,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO property_managers (property_id, manager_id, created_at)
		VALUES ($1, $2, $3)`,
		propertyID, managerID, assignment.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyAssigned
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrInvalidReference
		}
		return nil, fmt.Errorf("assign manager: %w", err)
	}
	return assignment, nil
}

func (r *PropertyRepository) UnassignManager(ctx context.Context, propertyID, managerID string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM property_managers WHERE property_id = $1 AND manager_id = $2",
		propertyID, managerID)
	if err != nil {
		return fmt.Errorf("unassign manager: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrAssignmentNotFound
	}
	return nil
}

func (r *PropertyRepository) ListManagers(ctx context.Context, propertyID string) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.id, u.name, u.email, u.password_hash, u.role, u.created_at, u.updated_at
		FROM users u
		JOIN property_managers pm ON pm.manager_id = u.id
		WHERE pm.property_id = $1
		ORDER BY pm.created_at DESC`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	defer rows.Close()

	managers := []domain.User{}
	for rows.Next() {
		var u domain.User
		var role string
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan manager: %w", err)
		}
		u.Role = domain.Role(role)
		managers = append(managers, u)
	}
	return managers, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (*domain.Property, error) {
	var p domain.Property
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Address, &p.PropertyType, &p.ContactPhone, &p.ContactEmail, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProperties(rows *sql.Rows) ([]domain.Property, error) {
	properties := []domain.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		properties = append(properties, *p)
	}
	return properties, rows.Err()
}
