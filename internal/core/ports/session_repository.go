package ports

import (
	"context"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
)

// SessionRepository persists the identity behind a session id so a session
// survives a restart of the process serving it.
type SessionRepository interface {
	Save(ctx context.Context, sessionID string, id *domain.Identity) error
	// Load returns nil, nil for an unknown or anonymous session.
	Load(ctx context.Context, sessionID string) (*domain.Identity, error)
	Delete(ctx context.Context, sessionID string) error
	// Count reports how many sessions hold an identity.
	Count(ctx context.Context) (int, error)
}
