package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
	"github.com/clinicdesk/clinic-portal/internal/core/session"
	"github.com/clinicdesk/clinic-portal/internal/infrastructure/memory"
)

func contextWithRole(t *testing.T, e *echo.Echo, role domain.Role) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	dir := memory.NewStaffDirectory(memory.DefaultStaff())
	store := session.NewStore(dir.Lookup, session.WithDelay(0))
	if role != "" && !store.Login(context.Background(), "a@b.com", "x", role) {
		t.Fatalf("login as %s failed", role)
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(session.WithStore(req.Context(), store))
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRBAC_Allows(t *testing.T) {
	e := echo.New()
	c, rec := contextWithRole(t, e, domain.RoleLaboratory)

	called := false
	mw := RBAC(domain.RoleLaboratory)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRBAC_Forbids(t *testing.T) {
	e := echo.New()
	c, rec := contextWithRole(t, e, domain.RoleReceptionist)

	mw := RBAC(domain.RoleLaboratory)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRBAC_Anonymous(t *testing.T) {
	e := echo.New()
	c, rec := contextWithRole(t, e, "")

	mw := RBAC(domain.RoleLaboratory)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
