package ports

import (
	"context"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditService processes a single audit event.
type AuditService interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}

// AuditPublisher hands audit events to asynchronous processing. Publish
// must not block the caller.
type AuditPublisher interface {
	Publish(event domain.AuditEvent)
}
