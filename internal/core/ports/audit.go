package ports

import (
	"context"

	"github.com/ridehail/admin-api/internal/core/domain"
)

// AuditRecorder accepts audit events for asynchronous persistence.
// Recording is fire-and-forget: failures are logged, never surfaced to the
// request that triggered the mutation.
type AuditRecorder interface {
	Record(ev domain.AuditEvent)
}

// AuditRepository defines persistence operations for the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, ev *domain.AuditEvent) error
	// ListRecent returns up to limit events, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.AuditEvent, error)
}
