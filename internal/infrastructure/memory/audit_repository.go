package memory

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
)

const defaultAuditCapacity = 1000

// AuditRepository writes audit events to the structured log and keeps the
// most recent ones in memory.
type AuditRepository struct {
	mu       sync.Mutex
	events   []domain.AuditEvent
	capacity int
	log      zerolog.Logger
}

// NewAuditRepository returns a repository retaining up to capacity events.
// If capacity <= 0, defaultAuditCapacity is used.
func NewAuditRepository(capacity int, log zerolog.Logger) *AuditRepository {
	if capacity <= 0 {
		capacity = defaultAuditCapacity
	}
	return &AuditRepository{capacity: capacity, log: log}
}

func (r *AuditRepository) Insert(_ context.Context, event *domain.AuditEvent) error {
	r.log.Info().
		Str("session_id", event.SessionID).
		Str("kind", string(event.Kind)).
		Str("role", string(event.Role)).
		Str("identity_id", event.IdentityID).
		Str("path", event.Path).
		Str("outcome", event.Outcome).
		Time("at", event.Timestamp).
		Msg("audit")

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == r.capacity {
		r.events = r.events[1:]
	}
	r.events = append(r.events, *event)
	return nil
}

// Recent returns retained events, oldest first.
func (r *AuditRepository) Recent() []domain.AuditEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditEvent, len(r.events))
	copy(out, r.events)
	return out
}
