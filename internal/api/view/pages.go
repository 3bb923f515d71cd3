// Package view renders the page payloads behind each navigable view.
package view

import (
	"context"
	"fmt"
	"net/url"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
	"github.com/clinicdesk/clinic-portal/internal/core/ports"
)

// Page is the payload returned for a rendered view.
type Page struct {
	View     domain.ViewID    `json:"view"`
	Path     string           `json:"path"`
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle,omitempty"`
	User     *domain.Identity `json:"user,omitempty"`
	Data     any              `json:"data,omitempty"`
}

// RoleOption is one entry of the login role selector.
type RoleOption struct {
	Value domain.Role `json:"value"`
	Label string      `json:"label"`
}

type builder func(ctx context.Context, page *Page, query url.Values) error

// Renderer builds pages by view id.
type Renderer struct {
	labTests ports.LabTestService
	builders map[domain.ViewID]builder
}

func NewRenderer(labTests ports.LabTestService) *Renderer {
	r := &Renderer{labTests: labTests}
	r.builders = map[domain.ViewID]builder{
		domain.ViewLogin:         r.login,
		domain.ViewDashboard:     r.dashboard,
		domain.ViewPatients:      static("Patients", "Manage patient records and registrations"),
		domain.ViewAppointments:  static("Appointments", "Schedule and manage patient appointments"),
		domain.ViewLabTests:      r.labTestsPage,
		domain.ViewPrescriptions: static("Prescriptions", "Review, dispense and administer prescriptions"),
		domain.ViewPayments:      static("Payments", "Track consultation, lab and pharmacy payments"),
		domain.ViewDrugStore:     static("Drug Store", "Manage medication inventory"),
		domain.ViewSettings:      static("Settings", "Manage users and clinic preferences"),
		domain.ViewNotFound:      static("Page not found", "The page you are looking for does not exist"),
	}
	return r
}

// Render builds the page for view as seen by user at path. user is nil for
// anonymous sessions.
func (r *Renderer) Render(ctx context.Context, view domain.ViewID, path string, user *domain.Identity, query url.Values) (*Page, error) {
	build, ok := r.builders[view]
	if !ok {
		return nil, fmt.Errorf("render: no page for view %q", view)
	}
	page := &Page{View: view, Path: path, User: user}
	if err := build(ctx, page, query); err != nil {
		return nil, err
	}
	return page, nil
}

func static(title, subtitle string) builder {
	return func(_ context.Context, page *Page, _ url.Values) error {
		page.Title = title
		page.Subtitle = subtitle
		return nil
	}
}

func (r *Renderer) login(_ context.Context, page *Page, _ url.Values) error {
	page.Title = "Clinic Portal"
	page.Subtitle = "Sign in to your account"
	roles := make([]RoleOption, 0, len(domain.Roles()))
	for _, role := range domain.Roles() {
		roles = append(roles, RoleOption{Value: role, Label: role.Label()})
	}
	page.Data = map[string]any{"roles": roles}
	return nil
}

func (r *Renderer) dashboard(_ context.Context, page *Page, _ url.Values) error {
	page.Title = "Dashboard"
	if page.User != nil {
		page.Subtitle = "Welcome back, " + page.User.Name
	}
	return nil
}

func (r *Renderer) labTestsPage(ctx context.Context, page *Page, query url.Values) error {
	page.Title = "Laboratory Tests"
	page.Subtitle = "Manage and process lab test requests"

	var role domain.Role
	if page.User != nil {
		role = page.User.Role
	}
	board, err := r.labTests.Board(ctx, query.Get("q"), role)
	if err != nil {
		return err
	}
	page.Data = board
	return nil
}
