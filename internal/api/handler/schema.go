package handler

import (
	"github.com/clinicdesk/clinic-portal/internal/core/domain"
)

// loginRequest carries unverified credentials: only size is bounded, every
// other outcome is decided by the role.
type loginRequest struct {
	Email    string `json:"email"    validate:"max=320"`
	Password string `json:"password" validate:"max=1024"`
	Role     string `json:"role"     validate:"max=64"`
}

type loginResponse struct {
	Success bool             `json:"success"`
	User    *domain.Identity `json:"user,omitempty"`
	Error   string           `json:"error,omitempty"`
}

type sessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	User          *domain.Identity `json:"user,omitempty"`
}

type uploadResultRequest struct {
	Result string `json:"result" validate:"max=10000"`
}

type errorResponse struct {
	Error string `json:"error"`
}
