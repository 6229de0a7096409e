package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/innstack/hotel-system/internal/core/domain"
	"github.com/innstack/hotel-system/internal/core/ports"
)

type PropertyService struct {
	repo   ports.PropertyRepository
	logger zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, logger zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, logger: logger}
}

// Create registers a new property owned by the calling user. Only
// property owners may create properties.
func (s *PropertyService) Create(ctx context.Context, actor ports.Actor, input ports.CreatePropertyInput) (*domain.Property, error) {
	if actor.Role != domain.RoleOwner {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	property := &domain.Property{
		ID:           uuid.NewString(),
		OwnerID:      actor.UserID,
		Name:         input.Name,
		Address:      input.Address,
		PropertyType: input.PropertyType,
		ContactPhone: input.ContactPhone,
		ContactEmail: input.ContactEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, property); err != nil {
		s.logger.Error().Err(err).Str("owner_id", actor.UserID).Msg("failed to create property")
		return nil, err
	}

	s.logger.Info().Str("property_id", property.ID).Str("owner_id", actor.UserID).Msg("property created")
	return property, nil
}

// Get returns a property after verifying the caller is its owner or one
// of its assigned managers.
func (s *PropertyService) Get(ctx context.Context, actor ports.Actor, id string) (*domain.Property, error) {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actor, property); err != nil {
		return nil, err
	}
	return property, nil
}

// List returns the properties visible to the caller: owned properties for
// owners, managed properties for managers.
func (s *PropertyService) List(ctx context.Context, actor ports.Actor) ([]domain.Property, error) {
	switch actor.Role {
	case domain.RoleOwner:
		return s.repo.ListByOwner(ctx, actor.UserID)
	case domain.RoleManager:
		return s.repo.ListByManager(ctx, actor.UserID)
	default:
		return nil, domain.ErrForbidden
	}
}

// Update applies a partial update. Only the owner may modify a property.
func (s *PropertyService) Update(ctx context.Context, actor ports.Actor, id string, patch ports.PropertyPatch) (*domain.Property, error) {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property.OwnerID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes a property. Only the owner may delete.
func (s *PropertyService) Delete(ctx context.Context, actor ports.Actor, id string) error {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if property.OwnerID != actor.UserID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("property_id", id).Msg("property deleted")
	return nil
}

func (s *PropertyService) authorize(ctx context.Context, actor ports.Actor, property *domain.Property) error {
	if property.OwnerID == actor.UserID {
		return nil
	}
	ok, err := s.repo.HasAccess(ctx, property.ID, actor.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}
