package ports

import (
	"context"

	"github.com/innstack/hotel-system/internal/core/domain"
)

// Actor identifies the authenticated caller of a service operation, as
// extracted from the bearer token by the auth middleware.
type Actor struct {
	UserID string
	Role   domain.Role
}

// AuthRepository defines persistence for user accounts.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
