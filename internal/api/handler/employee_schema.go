package handler

import "github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/domain"

type employeeRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Email       string   `json:"email"       validate:"required,email"`
	Mobile      string   `json:"mobile"      validate:"required,numeric"`
	Designation string   `json:"designation" validate:"required"`
	Gender      string   `json:"gender"      validate:"required,oneof=male female other"`
	Courses     []string `json:"courses"     validate:"required,min=1"`
	Image       string   `json:"image"`
}

type employeeResponse struct {
	Success bool             `json:"success"`
	Data    *domain.Employee `json:"data,omitempty"`
	Msg     string           `json:"msg,omitempty"`
}

type employeeListResponse struct {
	Success bool              `json:"success"`
	Data    []domain.Employee `json:"data"`
}
