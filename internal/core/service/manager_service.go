package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/innstack/hotel-system/internal/core/domain"
	"github.com/innstack/hotel-system/internal/core/ports"
)

// ManagerService maintains the many-to-many relation between properties
// and manager-role users. Only the property owner may change assignments.
type ManagerService struct {
	properties ports.PropertyRepository
	users      ports.AuthRepository
	logger     zerolog.Logger
}

func NewManagerService(properties ports.PropertyRepository, users ports.AuthRepository, logger zerolog.Logger) *ManagerService {
	return &ManagerService{properties: properties, users: users, logger: logger}
}

// Assign links a manager to a property. The target user must already hold
// the manager role; a duplicate pair is a conflict, not a silent no-op.
func (s *ManagerService) Assign(ctx context.Context, actor ports.Actor, propertyID, managerID string) (*domain.ManagerAssignment, error) {
	if err := s.requireOwner(ctx, actor, propertyID); err != nil {
		return nil, err
	}

	target, err := s.users.FindByID(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if target.Role != domain.RoleManager {
		return nil, domain.ErrNotAManager
	}

	assignment, err := s.properties.AssignManager(ctx, propertyID, managerID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("property_id", propertyID).Str("manager_id", managerID).Msg("manager assigned")
	return assignment, nil
}

// Unassign removes the pairing; a missing row is reported as not found.
func (s *ManagerService) Unassign(ctx context.Context, actor ports.Actor, propertyID, managerID string) error {
	if err := s.requireOwner(ctx, actor, propertyID); err != nil {
		return err
	}

	if err := s.properties.UnassignManager(ctx, propertyID, managerID); err != nil {
		return err
	}

	s.logger.Info().Str("property_id", propertyID).Str("manager_id", managerID).Msg("manager unassigned")
	return nil
}

// ListManagers returns the managers assigned to a property, newest first.
// Owner and assigned managers may read the list.
func (s *ManagerService) ListManagers(ctx context.Context, actor ports.Actor, propertyID string) ([]domain.User, error) {
	property, err := s.properties.FindByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property.OwnerID != actor.UserID {
		ok, err := s.properties.HasAccess(ctx, propertyID, actor.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrForbidden
		}
	}
	return s.properties.ListManagers(ctx, propertyID)
}

func (s *ManagerService) requireOwner(ctx context.Context, actor ports.Actor, propertyID string) error {
	property, err := s.properties.FindByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if property.OwnerID != actor.UserID {
		return domain.ErrForbidden
	}
	return nil
}
