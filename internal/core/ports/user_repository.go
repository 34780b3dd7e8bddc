package ports

import (
	"context"

	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/domain"
)

// UserRepository defines the persistence operations the auth core needs.
// Username uniqueness is enforced by the store itself so that concurrent
// registrations with the same name cannot both succeed.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
