package ports

import (
	"context"

	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/domain"
)

// RequestRepository defines persistence for user requests.
type RequestRepository interface {
	Create(ctx context.Context, request *domain.Request) (*domain.Request, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Request, error)
	FindAll(ctx context.Context) ([]domain.Request, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus, feedback string) (*domain.Request, error)
	Delete(ctx context.Context, id string) error
}

// RequestService exposes the request workflow use-cases.
type RequestService interface {
	Submit(ctx context.Context, userID, reqType, description string) (*domain.Request, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Request, error)
	ListAll(ctx context.Context) ([]domain.Request, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus, feedback string) (*domain.Request, error)
	Delete(ctx context.Context, id string) error
}
