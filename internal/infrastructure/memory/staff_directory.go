// Package memory provides in-process implementations of the core ports.
package memory

import (
	"context"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
)

// DefaultStaff is the fixed identity-per-role registry used for demos.
func DefaultStaff() []domain.Identity {
	return []domain.Identity{
		{ID: "1", Name: "Sarah Johnson", Email: "receptionist@clinic.com", Role: domain.RoleReceptionist},
		{ID: "2", Name: "Dr. Michael Chen", Email: "doctor@clinic.com", Role: domain.RoleOPD},
		{ID: "3", Name: "Emma Williams", Email: "lab@clinic.com", Role: domain.RoleLaboratory},
		{ID: "4", Name: "James Brown", Email: "pharmacy@clinic.com", Role: domain.RoleInjection},
	}
}

// StaffDirectory resolves a role to a fixed identity. It is read-only after
// construction.
type StaffDirectory struct {
	byRole map[domain.Role]domain.Identity
}

// NewStaffDirectory indexes staff by role. A later entry for the same role
// replaces an earlier one.
func NewStaffDirectory(staff []domain.Identity) *StaffDirectory {
	byRole := make(map[domain.Role]domain.Identity, len(staff))
	for _, id := range staff {
		byRole[id.Role] = id
	}
	return &StaffDirectory{byRole: byRole}
}

func (d *StaffDirectory) Lookup(_ context.Context, role domain.Role) (*domain.Identity, error) {
	id, ok := d.byRole[role]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	return &id, nil
}
