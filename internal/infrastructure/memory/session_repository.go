package memory

import (
	"context"
	"sync"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
)

// SessionRepository keeps persisted identities for the life of the process.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Identity
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]domain.Identity)}
}

func (r *SessionRepository) Save(ctx context.Context, sessionID string, id *domain.Identity) error {
	if id == nil {
		return r.Delete(ctx, sessionID)
	}
	r.mu.Lock()
	r.sessions[sessionID] = *id
	r.mu.Unlock()
	return nil
}

func (r *SessionRepository) Load(_ context.Context, sessionID string) (*domain.Identity, error) {
	r.mu.RLock()
	id, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return &id, nil
}

func (r *SessionRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.sessions, sessionID)
	r.mu.Unlock()
	return nil
}

func (r *SessionRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions), nil
}
