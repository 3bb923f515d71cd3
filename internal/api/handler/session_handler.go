package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinic-portal/internal/api/metrics"
	"github.com/clinicdesk/clinic-portal/internal/core/domain"
	"github.com/clinicdesk/clinic-portal/internal/core/ports"
)

type SessionHandler struct {
	sessions ports.SessionService
}

func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Login authenticates the browser session as the staff member of a role.
// Email and password are accepted but not verified; an unknown or missing
// role is a plain rejection.
//
// @Summary      Login
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login details"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  loginResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/session [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sid, store, err := ctxSession(c)
	if err != nil {
		return err
	}

	role := domain.ParseRole(req.Role)
	ok, err := h.sessions.Login(c.Request().Context(), sid, req.Email, req.Password, role)
	if err != nil && !ok {
		return err
	}
	roleLabel := string(role)
	if !role.Valid() {
		roleLabel = "other"
	}
	if !ok {
		metrics.LoginAttemptsTotal.WithLabelValues(roleLabel, "rejected").Inc()
		return c.JSON(http.StatusUnauthorized, loginResponse{Success: false, Error: "invalid credentials"})
	}
	metrics.LoginAttemptsTotal.WithLabelValues(roleLabel, "accepted").Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Success: true, User: store.Current()})
}

// Logout clears the browser session. Logging out an anonymous session is a
// no-op.
//
// @Summary      Logout
// @Tags         session
// @Success      204
// @Router       /api/session [delete]
func (h *SessionHandler) Logout(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.sessions.Logout(c.Request().Context(), sid); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Current reports the session state.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	_, store, err := ctxSession(c)
	if err != nil {
		return err
	}
	user := store.Current()
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: user != nil, User: user})
}
