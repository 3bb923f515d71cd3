package handler

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinic-portal/internal/api/metrics"
	"github.com/clinicdesk/clinic-portal/internal/api/view"
	"github.com/clinicdesk/clinic-portal/internal/core/domain"
	"github.com/clinicdesk/clinic-portal/internal/core/guard"
	"github.com/clinicdesk/clinic-portal/internal/core/ports"
)

// PageRenderer renders a view for the current identity.
type PageRenderer interface {
	Render(ctx context.Context, v domain.ViewID, path string, user *domain.Identity, query url.Values) (*view.Page, error)
}

// NavigationHandler answers every page navigation through the route guard.
type NavigationHandler struct {
	guard *guard.Guard
	pages PageRenderer
	audit ports.AuditPublisher
}

func NewNavigationHandler(g *guard.Guard, pages PageRenderer, audit ports.AuditPublisher) *NavigationHandler {
	return &NavigationHandler{guard: g, pages: pages, audit: audit}
}

// Navigate redirects (302) or renders the requested page. Unknown paths
// render the not-found page with status 404.
//
// @Summary      Navigate to a page
// @Tags         navigation
// @Produce      json
// @Param        q    query     string  false  "Search term (lab-tests page)"
// @Success      200  {object}  view.Page
// @Success      302
// @Failure      404  {object}  view.Page
// @Router       /{path} [get]
func (h *NavigationHandler) Navigate(c echo.Context) error {
	sid, store, err := ctxSession(c)
	if err != nil {
		return err
	}

	user := store.Current()
	decision := h.guard.Resolve(c.Request().URL.Path, user != nil)

	target := string(decision.View)
	if decision.Outcome == guard.Redirect {
		target = decision.Location
	}
	metrics.GuardDecisionsTotal.WithLabelValues(string(decision.Outcome), target).Inc()
	h.record(sid, user, decision, target)

	if decision.Outcome == guard.Redirect {
		return c.Redirect(http.StatusFound, decision.Location)
	}

	page, err := h.pages.Render(c.Request().Context(), decision.View, decision.Path, user, c.QueryParams())
	if err != nil {
		return err
	}

	status := http.StatusOK
	if decision.Outcome == guard.NotFound {
		status = http.StatusNotFound
	}
	return c.JSON(status, page)
}

func (h *NavigationHandler) record(sid string, user *domain.Identity, d guard.Decision, target string) {
	if h.audit == nil {
		return
	}
	event := domain.AuditEvent{
		SessionID: sid,
		Kind:      domain.AuditNavigate,
		Path:      d.Path,
		Outcome:   string(d.Outcome) + ":" + target,
		Timestamp: time.Now().UTC(),
	}
	if user != nil {
		event.Role = user.Role
		event.IdentityID = user.ID
	}
	h.audit.Publish(event)
}
