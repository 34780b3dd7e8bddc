package ports

import (
	"context"

	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/domain"
)

// AuditRecorder persists authentication audit entries.
type AuditRecorder interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
}

// AuditSink accepts audit entries for asynchronous recording. Enqueue must
// never block the caller.
type AuditSink interface {
	Enqueue(entry domain.AuditEntry)
}
