package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinic-portal/internal/api/view"
	"github.com/clinicdesk/clinic-portal/internal/core/domain"
	"github.com/clinicdesk/clinic-portal/internal/core/guard"
	"github.com/clinicdesk/clinic-portal/internal/core/service"
	"github.com/clinicdesk/clinic-portal/internal/infrastructure/memory"
)

func newNavigationHandler(pub *recordingPublisher) *NavigationHandler {
	labTests := service.NewLabTestService(memory.NewLabTestRepository(memory.MockLabTests()), zerolog.Nop())
	return NewNavigationHandler(guard.MustNew(guard.DefaultRoutes()), view.NewRenderer(labTests), pub)
}

func TestNavigationHandler(t *testing.T) {
	tests := []struct {
		name         string
		role         domain.Role
		path         string
		wantCode     int
		wantLocation string
		wantView     domain.ViewID
	}{
		{name: "anonymous protected", path: "/patients", wantCode: http.StatusFound, wantLocation: "/login"},
		{name: "anonymous root", path: "/", wantCode: http.StatusFound, wantLocation: "/login"},
		{name: "anonymous login", path: "/login", wantCode: http.StatusOK, wantView: domain.ViewLogin},
		{name: "anonymous unknown", path: "/does-not-exist", wantCode: http.StatusNotFound, wantView: domain.ViewNotFound},
		{name: "authenticated login", role: domain.RoleReceptionist, path: "/login", wantCode: http.StatusFound, wantLocation: "/dashboard"},
		{name: "authenticated root", role: domain.RoleReceptionist, path: "/", wantCode: http.StatusFound, wantLocation: "/dashboard"},
		{name: "authenticated alias", role: domain.RoleInjection, path: "/consultations", wantCode: http.StatusOK, wantView: domain.ViewDashboard},
		{name: "authenticated any role", role: domain.RoleInjection, path: "/settings", wantCode: http.StatusOK, wantView: domain.ViewSettings},
		{name: "authenticated unknown", role: domain.RoleOPD, path: "/does-not-exist", wantCode: http.StatusNotFound, wantView: domain.ViewNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			sessions := newTestSessions()
			if tt.role != "" {
				loginAs(t, sessions, "sid-1", tt.role)
			}
			pub := &recordingPublisher{}
			h := newNavigationHandler(pub)

			c, rec := sessionContext(t, e, sessions, "sid-1", httptest.NewRequest(http.MethodGet, tt.path, nil))
			if err := h.Navigate(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if tt.wantLocation != "" {
				if got := rec.Header().Get("Location"); got != tt.wantLocation {
					t.Fatalf("expected location %q, got %q", tt.wantLocation, got)
				}
			} else {
				var page view.Page
				if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if page.View != tt.wantView {
					t.Fatalf("expected view %q, got %q", tt.wantView, page.View)
				}
			}

			if len(pub.events) != 1 || pub.events[0].Kind != domain.AuditNavigate || pub.events[0].SessionID != "sid-1" {
				t.Fatalf("expected one navigate audit event, got %+v", pub.events)
			}
		})
	}
}

func TestNavigationHandler_LabTestsPageUsesSearch(t *testing.T) {
	e := newTestEcho()
	sessions := newTestSessions()
	loginAs(t, sessions, "sid-1", domain.RoleLaboratory)
	h := newNavigationHandler(&recordingPublisher{})

	c, rec := sessionContext(t, e, sessions, "sid-1", httptest.NewRequest(http.MethodGet, "/lab-tests?q=glucose", nil))
	if err := h.Navigate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var page struct {
		View domain.ViewID `json:"view"`
		Data struct {
			Counts struct {
				Pending    int `json:"pending"`
				InProgress int `json:"in_progress"`
				Completed  int `json:"completed"`
			} `json:"counts"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if page.View != domain.ViewLabTests {
		t.Fatalf("expected lab-tests view, got %q", page.View)
	}
	if c := page.Data.Counts; c.Pending != 0 || c.InProgress != 1 || c.Completed != 0 {
		t.Fatalf("unexpected counts: %+v", c)
	}
}
