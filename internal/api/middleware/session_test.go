package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
	"github.com/clinicdesk/clinic-portal/internal/core/service"
	"github.com/clinicdesk/clinic-portal/internal/core/session"
	"github.com/clinicdesk/clinic-portal/internal/infrastructure/memory"
)

func newSessionConfig() (SessionConfig, *service.SessionService) {
	dir := memory.NewStaffDirectory(memory.DefaultStaff())
	sessions := service.NewSessionService(dir, memory.NewSessionRepository(), nil, 0, zerolog.Nop())
	return SessionConfig{
		Sessions: sessions,
		Tokens:   service.NewSessionTokens("secret"),
		NewID:    func() string { return "fresh-sid" },
	}, sessions
}

func runSession(t *testing.T, cfg SessionConfig, req *http.Request) (*httptest.ResponseRecorder, string, *session.Store) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var sid string
	var store *session.Store
	handler := Session(cfg)(func(c echo.Context) error {
		sid, _ = c.Get(SessionIDKey).(string)
		store = session.FromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, sid, store
}

func TestSession_NewBrowserGetsCookie(t *testing.T) {
	cfg, _ := newSessionConfig()

	rec, sid, store := runSession(t, cfg, httptest.NewRequest(http.MethodGet, "/", nil))

	if sid != "fresh-sid" {
		t.Fatalf("expected fresh-sid, got %q", sid)
	}
	if store == nil || store.IsAuthenticated() {
		t.Fatalf("expected anonymous store")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookieName || !cookies[0].HttpOnly {
		t.Fatalf("expected one http-only session cookie, got %+v", cookies)
	}
	parsed, err := cfg.Tokens.Parse(cookies[0].Value)
	if err != nil || parsed != "fresh-sid" {
		t.Fatalf("cookie does not name the session: %q, %v", parsed, err)
	}
}

func TestSession_ReusesValidCookie(t *testing.T) {
	cfg, sessions := newSessionConfig()
	if ok, _ := sessions.Login(context.Background(), "known-sid", "a@b.com", "x", domain.RoleOPD); !ok {
		t.Fatalf("setup login failed")
	}
	token, _ := cfg.Tokens.Issue("known-sid")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rec, sid, store := runSession(t, cfg, req)

	if sid != "known-sid" {
		t.Fatalf("expected known-sid, got %q", sid)
	}
	if !store.IsAuthenticated() {
		t.Fatalf("expected authenticated store")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("expected no new cookie")
	}
}

func TestSession_TamperedCookieStartsFresh(t *testing.T) {
	cfg, _ := newSessionConfig()
	forged, _ := service.NewSessionTokens("attacker").Issue("known-sid")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: forged})
	_, sid, _ := runSession(t, cfg, req)

	if sid != "fresh-sid" {
		t.Fatalf("expected a fresh session, got %q", sid)
	}
}

type failingOpener struct{}

func (failingOpener) Open(context.Context, string) (*session.Store, error) {
	return nil, errors.New("redis down")
}

func TestSession_OpenFailure(t *testing.T) {
	cfg, _ := newSessionConfig()
	cfg.Sessions = failingOpener{}

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	handler := Session(cfg)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRequireAuthenticated(t *testing.T) {
	e := echo.New()

	anon, rec := contextWithRole(t, e, "")
	handler := RequireAuthenticated()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if err := handler(anon); err != nil {
		e.HTTPErrorHandler(err, anon)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous, got %d", rec.Code)
	}

	authed, rec := contextWithRole(t, e, domain.RoleInjection)
	if err := handler(authed); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for authenticated, got %d", rec.Code)
	}
}

func TestRecovery_MissingSessionProvider(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := Recovery(zerolog.Nop())(RequireAuthenticated()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 HTTPError, got %v", err)
	}
}
