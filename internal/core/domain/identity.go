package domain

import "strings"

// Role is a staff function. It gates which actions a page shows, never which
// paths are reachable.
type Role string

const (
	RoleReceptionist Role = "receptionist"
	RoleOPD          Role = "opd"
	RoleLaboratory   Role = "laboratory"
	RoleInjection    Role = "injection"
)

// Roles returns the closed role set in display order.
func Roles() []Role {
	return []Role{RoleReceptionist, RoleOPD, RoleLaboratory, RoleInjection}
}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	for _, known := range Roles() {
		if r == known {
			return true
		}
	}
	return false
}

// Label is the human-readable name shown on the login role selector.
func (r Role) Label() string {
	switch r {
	case RoleReceptionist:
		return "Receptionist"
	case RoleOPD:
		return "OPD / Doctor"
	case RoleLaboratory:
		return "Laboratory"
	case RoleInjection:
		return "Injection / Pharmacy"
	default:
		return string(r)
	}
}

// ParseRole normalises user input. It does not validate; use Valid.
func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// Identity is an authenticated staff member's profile.
type Identity struct {
	ID    string `json:"id" bson:"identity_id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Role  Role   `json:"role" bson:"role"`
}

// Clone returns a copy of id, or nil when id is nil.
func (id *Identity) Clone() *Identity {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
