package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/domain"
)

type stubRequestRepo struct {
	requests []domain.Request
	nextID   int
}

func (r *stubRequestRepo) Create(_ context.Context, request *domain.Request) (*domain.Request, error) {
	r.nextID++
	created := *request
	created.ID = "req-" + strconv.Itoa(r.nextID)
	r.requests = append(r.requests, created)
	return &created, nil
}

func (r *stubRequestRepo) FindByUserID(_ context.Context, userID string) ([]domain.Request, error) {
	var out []domain.Request
	for _, req := range r.requests {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *stubRequestRepo) FindAll(_ context.Context) ([]domain.Request, error) {
	return append([]domain.Request(nil), r.requests...), nil
}

func (r *stubRequestRepo) UpdateStatus(_ context.Context, id string, status domain.RequestStatus, feedback string) (*domain.Request, error) {
	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests[i].Status = status
			r.requests[i].FeedbackMessage = feedback
			req := r.requests[i]
			return &req, nil
		}
	}
	return nil, domain.ErrRequestNotFound
}

func (r *stubRequestRepo) Delete(_ context.Context, id string) error {
	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests = append(r.requests[:i], r.requests[i+1:]...)
			return nil
		}
	}
	return domain.ErrRequestNotFound
}

type stubDedup struct {
	duplicate bool
	err       error
	marked    int
}

func (d *stubDedup) IsDuplicate(context.Context, string, string, string) (bool, error) {
	return d.duplicate, d.err
}

func (d *stubDedup) Mark(context.Context, string, string, string) error {
	d.marked++
	return nil
}

func TestRequestService_Submit(t *testing.T) {
	repo := &stubRequestRepo{}
	dedup := &stubDedup{}
	svc := NewRequestService(repo, dedup, zerolog.Nop())

	created, err := svc.Submit(context.Background(), "u-1", "leave", "two days off")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.Status != domain.RequestPending {
		t.Fatalf("expected pending status, got %s", created.Status)
	}
	if dedup.marked != 1 {
		t.Fatalf("expected submission marked once, got %d", dedup.marked)
	}
}

func TestRequestService_Submit_Duplicate(t *testing.T) {
	repo := &stubRequestRepo{}
	svc := NewRequestService(repo, &stubDedup{duplicate: true}, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), "u-1", "leave", "two days off"); !errors.Is(err, domain.ErrDuplicateRequest) {
		t.Fatalf("expected ErrDuplicateRequest, got %v", err)
	}
	if len(repo.requests) != 0 {
		t.Fatalf("duplicate request was persisted")
	}
}

func TestRequestService_Submit_DedupOutage(t *testing.T) {
	repo := &stubRequestRepo{}
	dedup := &stubDedup{err: errors.New("redis down")}
	svc := NewRequestService(repo, dedup, zerolog.Nop())

	// The duplicate check is advisory: an outage must not block submissions.
	if _, err := svc.Submit(context.Background(), "u-1", "leave", "two days off"); err != nil {
		t.Fatalf("submit during dedup outage: %v", err)
	}
	if len(repo.requests) != 1 {
		t.Fatalf("request not persisted")
	}
}

func TestRequestService_ListForUser(t *testing.T) {
	repo := &stubRequestRepo{}
	svc := NewRequestService(repo, &stubDedup{}, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), "u-1", "leave", "a"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.Submit(context.Background(), "u-2", "expense", "b"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	own, err := svc.ListForUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("list for user: %v", err)
	}
	if len(own) != 1 || own[0].UserID != "u-1" {
		t.Fatalf("unexpected result: %+v", own)
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(all))
	}
}

func TestRequestService_UpdateStatus(t *testing.T) {
	repo := &stubRequestRepo{}
	svc := NewRequestService(repo, &stubDedup{}, zerolog.Nop())

	created, err := svc.Submit(context.Background(), "u-1", "leave", "a")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), created.ID, domain.RequestApproved, "enjoy")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != domain.RequestApproved || updated.FeedbackMessage != "enjoy" {
		t.Fatalf("unexpected request: %+v", updated)
	}

	if _, err := svc.UpdateStatus(context.Background(), "missing", domain.RequestRejected, ""); !errors.Is(err, domain.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}
