package ports

import (
	"context"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
)

// IdentityDirectory resolves the staff identity registered for a role.
// It returns domain.ErrIdentityNotFound when the role has no identity.
type IdentityDirectory interface {
	Lookup(ctx context.Context, role domain.Role) (*domain.Identity, error)
}
