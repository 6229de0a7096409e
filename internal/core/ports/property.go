package ports

import (
	"context"

	"github.com/innstack/hotel-system/internal/core/domain"
)

// CreatePropertyInput carries all data needed to create a property.
type CreatePropertyInput struct {
	Name         string
	Address      string
	PropertyType string
	ContactPhone string
	ContactEmail string
}

// PropertyPatch holds a partial update. Nil fields keep their previous
// value; the repository applies the merge in a single statement.
type PropertyPatch struct {
	Name         *string
	Address      *string
	PropertyType *string
	ContactPhone *string
	ContactEmail *string
}

// PropertyRepository defines persistence operations for properties and
// their manager assignments.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	Update(ctx context.Context, id string, patch PropertyPatch) (*domain.Property, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Property, error)
	ListByManager(ctx context.Context, managerID string) ([]domain.Property, error)

	// HasAccess reports whether userID is the property's owner or one of
	// its assigned managers.
	HasAccess(ctx context.Context, propertyID, userID string) (bool, error)

	AssignManager(ctx context.Context, propertyID, managerID string) (*domain.ManagerAssignment, error)
	UnassignManager(ctx context.Context, propertyID, managerID string) error
	ListManagers(ctx context.Context, propertyID string) ([]domain.User, error)
}

// PropertyService defines use-case operations for properties.
type PropertyService interface {
	Create(ctx context.Context, actor Actor, input CreatePropertyInput) (*domain.Property, error)
	Get(ctx context.Context, actor Actor, id string) (*domain.Property, error)
	List(ctx context.Context, actor Actor) ([]domain.Property, error)
	Update(ctx context.Context, actor Actor, id string, patch PropertyPatch) (*domain.Property, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

// ManagerService manages the property ↔ manager relation.
type ManagerService interface {
	Assign(ctx context.Context, actor Actor, propertyID, managerID string) (*domain.ManagerAssignment, error)
	Unassign(ctx context.Context, actor Actor, propertyID, managerID string) error
	ListManagers(ctx context.Context, actor Actor, propertyID string) ([]domain.User, error)
}
