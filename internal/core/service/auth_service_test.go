package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = "id-" + strconv.Itoa(r.nextID)
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubAuditSink struct {
	entries []domain.AuditEntry
}

func (s *stubAuditSink) Enqueue(entry domain.AuditEntry) {
	s.entries = append(s.entries, entry)
}

func newAuthService(admin string) (*AuthService, *stubUserRepo, *stubAuditSink) {
	repo := newStubUserRepo()
	audit := &stubAuditSink{}
	tokens := NewTokenService("access-secret", "refresh-secret")
	return NewAuthService(repo, tokens, admin, audit), repo, audit
}

func TestAuthService_Register_RoleAssignment(t *testing.T) {
	svc, _, _ := newAuthService("boss")

	user, err := svc.Register(context.Background(), "alice", "pw1234")
	if err != nil {
		t.Fatalf("register alice: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role user, got %s", user.Role)
	}

	admin, err := svc.Register(context.Background(), "boss", "pw5678")
	if err != nil {
		t.Fatalf("register boss: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("expected role admin, got %s", admin.Role)
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	svc, repo, _ := newAuthService("boss")

	if _, err := svc.Register(context.Background(), "alice", "pw1234"); err != nil {
		t.Fatalf("register: %v", err)
	}

	stored := repo.users["alice"]
	if stored.PasswordHash == "pw1234" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw1234")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newAuthService("boss")

	if _, err := svc.Register(context.Background(), "alice", "pw1234"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "other-password"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _ := newAuthService("boss")

	if _, err := svc.Register(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty username, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, audit := newAuthService("boss")

	if _, err := svc.Register(context.Background(), "alice", "pw1234"); err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.Login(context.Background(), "alice", "pw1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", result)
	}
	if result.User.Username != "alice" || result.User.Role != domain.RoleUser {
		t.Fatalf("unexpected user: %+v", result.User)
	}

	tokens := NewTokenService("access-secret", "refresh-secret")
	claims, err := tokens.VerifyAccessToken(result.AccessToken)
	if err != nil {
		t.Fatalf("access token invalid: %v", err)
	}
	if claims.UserID != result.User.ID || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	last := audit.entries[len(audit.entries)-1]
	if last.Action != domain.AuditLogin {
		t.Fatalf("expected login audit entry, got %s", last.Action)
	}
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newAuthService("boss")

	if _, err := svc.Register(context.Background(), "alice", "pw1234"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "alice", "wrong")
	_, noUser := svc.Login(context.Background(), "ghost", "pw1234")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(noUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", noUser)
	}
	if wrongPass.Error() != noUser.Error() {
		t.Fatalf("error messages differ: %q vs %q", wrongPass, noUser)
	}
}

func TestAuthService_Refresh_Success(t *testing.T) {
	svc, _, _ := newAuthService("boss")

	if _, err := svc.Register(context.Background(), "boss", "pw1234"); err != nil {
		t.Fatalf("register: %v", err)
	}
	result, err := svc.Login(context.Background(), "boss", "pw1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	accessToken, err := svc.Refresh(context.Background(), result.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	tokens := NewTokenService("access-secret", "refresh-secret")
	claims, err := tokens.VerifyAccessToken(accessToken)
	if err != nil {
		t.Fatalf("refreshed access token invalid: %v", err)
	}
	// The role comes from the store, not from the refresh token.
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role in refreshed token, got %q", claims.Role)
	}
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc, _, _ := newAuthService("boss")

	if _, err := svc.Register(context.Background(), "alice", "pw1234"); err != nil {
		t.Fatalf("register: %v", err)
	}
	result, err := svc.Login(context.Background(), "alice", "pw1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), result.AccessToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("access token accepted for refresh: %v", err)
	}
}

func TestAuthService_Refresh_ExpiredToken(t *testing.T) {
	svc, _, _ := newAuthService("boss")

	tokens := NewTokenService("access-secret", "refresh-secret")
	expired, err := tokens.IssueRefreshToken("id-1", -time.Minute)
	if err != nil {
		t.Fatalf("issue expired token: %v", err)
	}

	token, err := svc.Refresh(context.Background(), expired)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if token != "" {
		t.Fatalf("expected no access token on failure, got %q", token)
	}
}

func TestAuthService_Refresh_UserGone(t *testing.T) {
	svc, _, _ := newAuthService("boss")

	tokens := NewTokenService("access-secret", "refresh-secret")
	refresh, err := tokens.IssueRefreshToken("id-99", time.Hour)
	if err != nil {
		t.Fatalf("issue refresh token: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), refresh); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for missing user, got %v", err)
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	svc, _, _ := newAuthService("boss")

	created, err := svc.Register(context.Background(), "alice", "pw1234")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.CurrentUser(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.CurrentUser(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
