package domain

import "time"

// AuditAction identifies an authentication event worth recording.
type AuditAction string

const (
	AuditRegistered     AuditAction = "registered"
	AuditLogin          AuditAction = "login"
	AuditLoginFailed    AuditAction = "login_failed"
	AuditTokenRefreshed AuditAction = "token_refreshed"
)

// AuditEntry is one line of the authentication audit trail.
type AuditEntry struct {
	Username  string      `json:"username"`
	UserID    string      `json:"user_id,omitempty"`
	Action    AuditAction `json:"action"`
	Timestamp time.Time   `json:"timestamp"`
}
