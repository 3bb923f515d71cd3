package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinic-portal/internal/core/session"
)

const (
	// SessionCookieName carries the signed session token.
	SessionCookieName = "clinic_session"
	// SessionIDKey is the echo.Context key holding the session id.
	SessionIDKey = "session_id"
)

// SessionOpener returns the store behind a session id.
type SessionOpener interface {
	Open(ctx context.Context, sessionID string) (*session.Store, error)
}

// TokenCodec signs and verifies session tokens.
type TokenCodec interface {
	Issue(sessionID string) (string, error)
	Parse(token string) (string, error)
}

// SessionConfig configures the Session middleware.
type SessionConfig struct {
	Sessions SessionOpener
	Tokens   TokenCodec
	// Secure marks the cookie HTTPS-only.
	Secure bool
	// NewID generates session ids. Defaults to uuid.NewString.
	NewID func() string
}

// Session resolves the browser's session from its cookie, minting a new
// session when the cookie is missing or fails verification, and attaches the
// session store to the request context.
func Session(cfg SessionConfig) echo.MiddlewareFunc {
	newID := cfg.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sid string
			if ck, err := c.Cookie(SessionCookieName); err == nil && ck.Value != "" {
				if parsed, err := cfg.Tokens.Parse(ck.Value); err == nil {
					sid = parsed
				}
			}

			if sid == "" {
				sid = newID()
				token, err := cfg.Tokens.Issue(sid)
				if err != nil {
					return fmt.Errorf("issue session token: %w", err)
				}
				c.SetCookie(&http.Cookie{
					Name:     SessionCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			req := c.Request()
			store, err := cfg.Sessions.Open(req.Context(), sid)
			if err != nil {
				return err
			}

			c.SetRequest(req.WithContext(session.WithStore(req.Context(), store)))
			c.Set(SessionIDKey, sid)
			return next(c)
		}
	}
}

// RequireAuthenticated rejects requests whose session holds no identity.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !session.FromContext(c.Request().Context()).IsAuthenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}
