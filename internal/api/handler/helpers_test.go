package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinic-portal/internal/api/middleware"
	"github.com/clinicdesk/clinic-portal/internal/core/domain"
	"github.com/clinicdesk/clinic-portal/internal/core/service"
	"github.com/clinicdesk/clinic-portal/internal/core/session"
	"github.com/clinicdesk/clinic-portal/internal/infrastructure/memory"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (p *recordingPublisher) Publish(e domain.AuditEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func newTestSessions() *service.SessionService {
	dir := memory.NewStaffDirectory(memory.DefaultStaff())
	return service.NewSessionService(dir, memory.NewSessionRepository(), nil, 0, zerolog.Nop())
}

// sessionContext builds an echo.Context carrying the store of sid, as the
// Session middleware would.
func sessionContext(t *testing.T, e *echo.Echo, sessions *service.SessionService, sid string, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	store, err := sessions.Open(context.Background(), sid)
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	req = req.WithContext(session.WithStore(req.Context(), store))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.SessionIDKey, sid)
	return c, rec
}

func loginAs(t *testing.T, sessions *service.SessionService, sid string, role domain.Role) {
	t.Helper()
	ok, err := sessions.Login(context.Background(), sid, "a@b.com", "x", role)
	if err != nil || !ok {
		t.Fatalf("login as %s: ok=%t err=%v", role, ok, err)
	}
}
