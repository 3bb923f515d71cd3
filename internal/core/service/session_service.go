package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
	"github.com/clinicdesk/clinic-portal/internal/core/ports"
	"github.com/clinicdesk/clinic-portal/internal/core/session"
)

// SessionService builds session stores from the repository, which is the
// only record of who is logged in. No store outlives the request it serves.
type SessionService struct {
	directory ports.IdentityDirectory
	repo      ports.SessionRepository
	audit     ports.AuditPublisher
	delay     time.Duration
	log       zerolog.Logger
}

// NewSessionService returns a SessionService. loginDelay is the simulated
// round-trip applied to every login; a negative value selects the default.
func NewSessionService(
	directory ports.IdentityDirectory,
	repo ports.SessionRepository,
	audit ports.AuditPublisher,
	loginDelay time.Duration,
	log zerolog.Logger,
) *SessionService {
	if loginDelay < 0 {
		loginDelay = session.DefaultLoginDelay
	}
	return &SessionService{
		directory: directory,
		repo:      repo,
		audit:     audit,
		delay:     loginDelay,
		log:       log,
	}
}

// Open hydrates a fresh store for sessionID from the repository.
func (s *SessionService) Open(ctx context.Context, sessionID string) (*session.Store, error) {
	persisted, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	opts := []session.Option{session.WithDelay(s.delay), session.WithLogger(s.log)}
	if persisted != nil {
		opts = append(opts, session.WithIdentity(persisted))
	}
	return session.NewStore(s.directory.Lookup, opts...), nil
}

// storeFor reuses the store the Session middleware attached to ctx, so the
// caller observes the change, and opens one otherwise.
func (s *SessionService) storeFor(ctx context.Context, sessionID string) (*session.Store, error) {
	if store, ok := session.Lookup(ctx); ok {
		return store, nil
	}
	return s.Open(ctx, sessionID)
}

// Login authenticates the session as the identity registered for role.
func (s *SessionService) Login(ctx context.Context, sessionID, email, password string, role domain.Role) (bool, error) {
	store, err := s.storeFor(ctx, sessionID)
	if err != nil {
		return false, err
	}

	if !store.Login(ctx, email, password, role) {
		s.log.Info().Str("session_id", sessionID).Str("role", string(role)).Msg("login rejected")
		s.publish(domain.AuditEvent{SessionID: sessionID, Kind: domain.AuditLoginFailed, Role: role, Outcome: "rejected"})
		return false, nil
	}

	current := store.Current()
	if err := s.repo.Save(ctx, sessionID, current); err != nil {
		return true, fmt.Errorf("login: persist session: %w", err)
	}

	s.log.Info().
		Str("session_id", sessionID).
		Str("role", string(current.Role)).
		Str("identity_id", current.ID).
		Msg("login succeeded")
	s.publish(domain.AuditEvent{
		SessionID:  sessionID,
		Kind:       domain.AuditLogin,
		Role:       current.Role,
		IdentityID: current.ID,
		Outcome:    "accepted",
	})
	return true, nil
}

// Logout clears the session. It is idempotent.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	store, err := s.storeFor(ctx, sessionID)
	if err != nil {
		return err
	}

	prev := store.Current()
	store.Logout()

	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	if prev != nil {
		s.publish(domain.AuditEvent{
			SessionID:  sessionID,
			Kind:       domain.AuditLogout,
			Role:       prev.Role,
			IdentityID: prev.ID,
		})
	}
	return nil
}

// Authenticated counts the persisted authenticated sessions.
func (s *SessionService) Authenticated(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

func (s *SessionService) publish(event domain.AuditEvent) {
	if s.audit == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	s.audit.Publish(event)
}
