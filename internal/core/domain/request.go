package domain

import (
	"errors"
	"time"
)

// RequestStatus is the review state of a user request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

var (
	ErrRequestNotFound  = errors.New("request not found")
	ErrDuplicateRequest = errors.New("duplicate request")
)

// Request is a ticket submitted by a user and reviewed by an admin.
type Request struct {
	ID              string        `json:"id"`
	UserID          string        `json:"userId"`
	Username        string        `json:"username,omitempty"`
	Type            string        `json:"type"`
	Description     string        `json:"description"`
	Status          RequestStatus `json:"status"`
	FeedbackMessage string        `json:"feedbackMessage,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}
