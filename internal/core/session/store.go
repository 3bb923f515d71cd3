// Package session holds the zero-or-one authenticated identity of a single
// browser session and the context plumbing that hands it to consumers.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
)

// DefaultLoginDelay simulates the network round-trip of a login call.
const DefaultLoginDelay = 800 * time.Millisecond

// LookupFunc resolves the identity registered for a role. It returns
// domain.ErrIdentityNotFound when no identity is registered.
type LookupFunc func(ctx context.Context, role domain.Role) (*domain.Identity, error)

// Store holds the current identity of one session. Login and Logout are the
// only mutation points.
type Store struct {
	mu      sync.RWMutex
	current *domain.Identity

	lookup LookupFunc
	delay  time.Duration
	sleep  func(time.Duration)
	log    zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithDelay overrides the simulated login delay. Zero disables it.
func WithDelay(d time.Duration) Option {
	return func(s *Store) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithIdentity starts the store authenticated as id. Used to hydrate a
// persisted session.
func WithIdentity(id *domain.Identity) Option {
	return func(s *Store) { s.current = id.Clone() }
}

// WithLogger sets the logger used for lookup failures.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// withSleep replaces time.Sleep in tests.
func withSleep(fn func(time.Duration)) Option {
	return func(s *Store) { s.sleep = fn }
}

// NewStore returns an anonymous store backed by lookup.
func NewStore(lookup LookupFunc, opts ...Option) *Store {
	s := &Store{
		lookup: lookup,
		delay:  DefaultLoginDelay,
		sleep:  time.Sleep,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login waits for the simulated delay and then authenticates as the identity
// registered for role. Email and password are accepted but not verified.
// An unregistered role returns false and leaves the session unchanged.
// The delay cannot be cancelled; ctx only reaches the lookup.
func (s *Store) Login(ctx context.Context, email, password string, role domain.Role) bool {
	if s.delay > 0 {
		s.sleep(s.delay)
	}

	id, err := s.lookup(ctx, role)
	if err != nil {
		if !errors.Is(err, domain.ErrIdentityNotFound) {
			s.log.Warn().Err(err).Str("role", string(role)).Msg("identity lookup failed")
		}
		return false
	}
	if id == nil {
		return false
	}

	s.mu.Lock()
	s.current = id.Clone()
	s.mu.Unlock()
	return true
}

// Logout clears the current identity. Calling it on an anonymous store is a
// no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// IsAuthenticated reports whether an identity is current.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Current returns a copy of the current identity, or nil.
func (s *Store) Current() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}
