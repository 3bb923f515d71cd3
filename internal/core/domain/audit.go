package domain

import "time"

// AuditKind classifies an audit event.
type AuditKind string

const (
	AuditLogin       AuditKind = "login"
	AuditLoginFailed AuditKind = "login_failed"
	AuditLogout      AuditKind = "logout"
	AuditNavigate    AuditKind = "navigate"
)

// AuditEvent records a session-level action.
type AuditEvent struct {
	SessionID  string    `json:"session_id" bson:"session_id"`
	Kind       AuditKind `json:"kind" bson:"kind"`
	Role       Role      `json:"role,omitempty" bson:"role,omitempty"`
	IdentityID string    `json:"identity_id,omitempty" bson:"identity_id,omitempty"`
	Path       string    `json:"path,omitempty" bson:"path,omitempty"`
	Outcome    string    `json:"outcome,omitempty" bson:"outcome,omitempty"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}
