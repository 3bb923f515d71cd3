package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinic-portal/internal/api/middleware"
	"github.com/clinicdesk/clinic-portal/internal/core/domain"
	"github.com/clinicdesk/clinic-portal/internal/core/session"
)

// ctxSession returns the session id and store injected by the Session
// middleware. A missing id means the middleware did not run.
func ctxSession(c echo.Context) (string, *session.Store, error) {
	sid, _ := c.Get(middleware.SessionIDKey).(string)
	if sid == "" {
		return "", nil, echo.NewHTTPError(http.StatusInternalServerError, "session middleware not configured")
	}
	return sid, session.FromContext(c.Request().Context()), nil
}

// ctxIdentity returns the current identity, failing with 401 for anonymous
// sessions.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	id := session.FromContext(c.Request().Context()).Current()
	if id == nil {
		return nil, domain.ErrUnauthenticated
	}
	return id, nil
}
