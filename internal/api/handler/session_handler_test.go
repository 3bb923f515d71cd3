package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
	"github.com/clinicdesk/clinic-portal/internal/core/session"
)

func postLogin(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/session", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestSessionHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	sessions := newTestSessions()
	h := NewSessionHandler(sessions)

	c, rec := sessionContext(t, e, sessions, "sid-1", postLogin(`{"email":"a@b.com","password":"x","role":"laboratory"}`))
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.User == nil {
		t.Fatalf("expected success with user, got %+v", resp)
	}
	if resp.User.Name != "Emma Williams" || resp.User.Email != "lab@clinic.com" || resp.User.ID != "3" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
	if !session.FromContext(c.Request().Context()).IsAuthenticated() {
		t.Fatalf("expected session to be authenticated")
	}
}

func TestSessionHandler_Login_UnknownRole(t *testing.T) {
	e := newTestEcho()
	sessions := newTestSessions()
	h := NewSessionHandler(sessions)

	c, rec := sessionContext(t, e, sessions, "sid-1", postLogin(`{"email":"a@b.com","password":"x","role":"admin"}`))
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp loginResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Success || resp.Error != "invalid credentials" || resp.User != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if session.FromContext(c.Request().Context()).IsAuthenticated() {
		t.Fatalf("expected session to stay anonymous")
	}
}

func TestSessionHandler_Login_CredentialsNotVerified(t *testing.T) {
	e := newTestEcho()
	sessions := newTestSessions()
	h := NewSessionHandler(sessions)

	c, rec := sessionContext(t, e, sessions, "sid-1", postLogin(`{"email":"x","password":"","role":"injection"}`))
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	var resp loginResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if !resp.Success || resp.User == nil || resp.User.Name != "James Brown" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSessionHandler_Login_MissingRoleIsRejection(t *testing.T) {
	e := newTestEcho()
	sessions := newTestSessions()
	h := NewSessionHandler(sessions)

	c, rec := sessionContext(t, e, sessions, "sid-1", postLogin(`{"email":"a@b.com","password":"x"}`))
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSessionHandler_Login_OversizedField(t *testing.T) {
	e := newTestEcho()
	sessions := newTestSessions()
	h := NewSessionHandler(sessions)

	body := `{"email":"a@b.com","password":"` + strings.Repeat("p", 1025) + `","role":"opd"}`
	c, _ := sessionContext(t, e, sessions, "sid-1", postLogin(body))
	err := h.Login(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestSessionHandler_Login_BadPayload(t *testing.T) {
	e := newTestEcho()
	sessions := newTestSessions()
	h := NewSessionHandler(sessions)

	c, _ := sessionContext(t, e, sessions, "sid-1", postLogin(`{`))
	err := h.Login(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestSessionHandler_LogoutAndCurrent(t *testing.T) {
	e := newTestEcho()
	sessions := newTestSessions()
	h := NewSessionHandler(sessions)
	loginAs(t, sessions, "sid-1", domain.RoleOPD)

	c, rec := sessionContext(t, e, sessions, "sid-1", httptest.NewRequest(http.MethodGet, "/api/session", nil))
	if err := h.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var current sessionResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &current)
	if !current.Authenticated || current.User == nil || current.User.Name != "Dr. Michael Chen" {
		t.Fatalf("unexpected current session: %+v", current)
	}

	for i := 0; i < 2; i++ {
		c, rec = sessionContext(t, e, sessions, "sid-1", httptest.NewRequest(http.MethodDelete, "/api/session", nil))
		if err := h.Logout(c); err != nil {
			t.Fatalf("logout %d: %v", i, err)
		}
		if rec.Code != http.StatusNoContent {
			t.Fatalf("logout %d: expected 204, got %d", i, rec.Code)
		}
	}

	c, rec = sessionContext(t, e, sessions, "sid-1", httptest.NewRequest(http.MethodGet, "/api/session", nil))
	if err := h.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	current = sessionResponse{}
	_ = json.Unmarshal(rec.Body.Bytes(), &current)
	if current.Authenticated || current.User != nil {
		t.Fatalf("expected anonymous session, got %+v", current)
	}
}

func TestSessionHandler_MissingSessionMiddleware(t *testing.T) {
	e := newTestEcho()
	h := NewSessionHandler(newTestSessions())

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/session", nil), httptest.NewRecorder())
	err := h.Current(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %v", err)
	}
}
