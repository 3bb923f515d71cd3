package ports

import (
	"context"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
	"github.com/clinicdesk/clinic-portal/internal/core/session"
)

// SessionService owns one session.Store per browser session.
type SessionService interface {
	Open(ctx context.Context, sessionID string) (*session.Store, error)
	// Login reports false for an unrecognised role. The error is reserved
	// for persistence failures after a successful login.
	Login(ctx context.Context, sessionID, email, password string, role domain.Role) (bool, error)
	Logout(ctx context.Context, sessionID string) error
	// Authenticated counts persisted authenticated sessions.
	Authenticated(ctx context.Context) (int, error)
}
