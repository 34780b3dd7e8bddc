package ports

import (
	"context"

	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/domain"
)

// LoginResult carries the token pair and public user fields returned by a
// successful login.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}

// AuthService orchestrates registration, login and token refresh.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
