package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/api/metrics"
	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/domain"
	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/ports"
)

const (
	bcryptCost = 10

	// The login-issued access token outlives the refresh-issued one. The
	// asymmetry is inherited behavior; both values are intentional here.
	loginAccessTokenTTL   = time.Hour
	refreshAccessTokenTTL = 15 * time.Minute
	refreshTokenTTL       = 7 * 24 * time.Hour
)

// AuthService implements registration, login and token refresh.
type AuthService struct {
	repo          ports.UserRepository
	tokens        *TokenService
	adminUsername string
	audit         ports.AuditSink
}

func NewAuthService(repo ports.UserRepository, tokens *TokenService, adminUsername string, audit ports.AuditSink) *AuthService {
	return &AuthService{
		repo:          repo,
		tokens:        tokens,
		adminUsername: adminUsername,
		audit:         audit,
	}
}

// Register creates a new account. The admin role is granted only to the
// configured designated admin username; everyone else is a plain user.
// The username-uniqueness race is settled by the store, not here.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	role := domain.RoleUser
	if username == s.adminUsername {
		role = domain.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(role).Inc()
	s.record(domain.AuditEntry{Username: username, UserID: created.ID, Action: domain.AuditRegistered})
	return created, nil
}

// Login verifies the credentials and issues the access/refresh token pair.
// A missing user and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			s.record(domain.AuditEntry{Username: username, Action: domain.AuditLoginFailed})
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.record(domain.AuditEntry{Username: username, UserID: user.ID, Action: domain.AuditLoginFailed})
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.IssueAccessToken(user.ID, user.Role, loginAccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.IssueRefreshToken(user.ID, refreshTokenTTL)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.record(domain.AuditEntry{Username: username, UserID: user.ID, Action: domain.AuditLogin})

	return &ports.LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh mints a new short-lived access token from a valid refresh token.
// The refresh token itself is neither rotated nor invalidated; it stays
// usable until its own expiry. The role is re-read from the store because
// refresh tokens do not carry one.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", domain.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidToken
		}
		return "", err
	}

	accessToken, err := s.tokens.IssueAccessToken(user.ID, user.Role, refreshAccessTokenTTL)
	if err != nil {
		return "", err
	}

	metrics.TokenRefreshesTotal.Inc()
	s.record(domain.AuditEntry{Username: user.Username, UserID: user.ID, Action: domain.AuditTokenRefreshed})
	return accessToken, nil
}

// CurrentUser resolves the user behind an authenticated request.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *AuthService) record(entry domain.AuditEntry) {
	if s.audit == nil {
		return
	}
	entry.Timestamp = time.Now().UTC()
	s.audit.Enqueue(entry)
}
