package service

import (
	"context"
	"time"

	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/domain"
	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/ports"
)

// EmployeeService implements employee administration on top of the
// repository. All mutating operations are admin-gated at the HTTP layer.
type EmployeeService struct {
	repo ports.EmployeeRepository
}

func NewEmployeeService(repo ports.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

func (s *EmployeeService) Create(ctx context.Context, createdBy string, update ports.EmployeeUpdate) (*domain.Employee, error) {
	employee := &domain.Employee{
		CreatedBy:   createdBy,
		Name:        update.Name,
		Email:       update.Email,
		Mobile:      update.Mobile,
		Designation: update.Designation,
		Gender:      update.Gender,
		Courses:     update.Courses,
		Image:       update.Image,
		CreatedAt:   time.Now().UTC(),
	}
	return s.repo.Create(ctx, employee)
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.FindAll(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeService) Update(ctx context.Context, id string, update ports.EmployeeUpdate) (*domain.Employee, error) {
	return s.repo.Update(ctx, id, update)
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
