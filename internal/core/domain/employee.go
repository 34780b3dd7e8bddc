package domain

import (
	"errors"
	"time"
)

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrDuplicateEmployee = errors.New("employee email already registered")
)

// Employee is a staff record managed through the admin panel. Image holds
// the filename of an already-uploaded picture; file handling itself lives
// outside this service.
type Employee struct {
	ID          string    `json:"id"`
	CreatedBy   string    `json:"created_by"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Mobile      string    `json:"mobile"`
	Designation string    `json:"designation"`
	Gender      string    `json:"gender"`
	Courses     []string  `json:"courses"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
