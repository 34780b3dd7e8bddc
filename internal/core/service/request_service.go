package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/domain"
	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/ports"
)

// RequestService implements the user-request workflow. Submissions pass
// through a best-effort duplicate check so a double-clicked form does not
// file the same ticket twice.
type RequestService struct {
	repo  ports.RequestRepository
	dedup ports.DuplicateChecker
	log   zerolog.Logger
}

func NewRequestService(repo ports.RequestRepository, dedup ports.DuplicateChecker, log zerolog.Logger) *RequestService {
	return &RequestService{repo: repo, dedup: dedup, log: log}
}

func (s *RequestService) Submit(ctx context.Context, userID, reqType, description string) (*domain.Request, error) {
	if s.dedup != nil {
		dup, err := s.dedup.IsDuplicate(ctx, userID, reqType, description)
		if err != nil {
			// Dedup is advisory; a Redis outage must not block submissions.
			s.log.Warn().Err(err).Str("user_id", userID).Msg("duplicate check unavailable")
		} else if dup {
			return nil, domain.ErrDuplicateRequest
		}
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Request{
		UserID:      userID,
		Type:        reqType,
		Description: description,
		Status:      domain.RequestPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	if s.dedup != nil {
		if err := s.dedup.Mark(ctx, userID, reqType, description); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to mark request for dedup")
		}
	}
	return created, nil
}

func (s *RequestService) ListForUser(ctx context.Context, userID string) ([]domain.Request, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *RequestService) ListAll(ctx context.Context) ([]domain.Request, error) {
	return s.repo.FindAll(ctx)
}

func (s *RequestService) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus, feedback string) (*domain.Request, error) {
	return s.repo.UpdateStatus(ctx, id, status, feedback)
}

func (s *RequestService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
