package handler

import "github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/domain"

type submitRequestRequest struct {
	Type        string `json:"type"        validate:"required"`
	Description string `json:"description" validate:"required"`
}

type updateStatusRequest struct {
	Status          string `json:"status"          validate:"required,oneof=pending approved rejected"`
	FeedbackMessage string `json:"feedbackMessage"`
}

type requestListResponse struct {
	Success bool             `json:"success"`
	Data    []domain.Request `json:"data"`
}

type updateStatusResponse struct {
	Message        string          `json:"message"`
	UpdatedRequest *domain.Request `json:"updatedRequest"`
}

type messageResponse struct {
	Message string `json:"message"`
}
