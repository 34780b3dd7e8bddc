package ports

import (
	"context"

	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/domain"
)

// EmployeeUpdate carries the mutable employee fields. Image is optional:
// an empty value keeps the stored filename.
type EmployeeUpdate struct {
	Name        string
	Email       string
	Mobile      string
	Designation string
	Gender      string
	Courses     []string
	Image       string
}

// EmployeeRepository defines persistence for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	FindAll(ctx context.Context) ([]domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	Update(ctx context.Context, id string, update EmployeeUpdate) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}

// EmployeeService exposes the employee administration use-cases.
type EmployeeService interface {
	Create(ctx context.Context, createdBy string, update EmployeeUpdate) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	Update(ctx context.Context, id string, update EmployeeUpdate) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
