package guard

import "github.com/clinicdesk/clinic-portal/internal/core/domain"

// Access describes who may see a route.
type Access int

const (
	// Protected routes render for authenticated sessions only.
	Protected Access = iota
	// AnonymousOnly routes render for anonymous sessions; authenticated
	// sessions are sent to the default view.
	AnonymousOnly
	// Entry routes never render; they redirect based on session state.
	Entry
)

func (a Access) String() string {
	switch a {
	case Protected:
		return "protected"
	case AnonymousOnly:
		return "anonymous-only"
	case Entry:
		return "entry"
	default:
		return "unknown"
	}
}

// Route maps a navigable path to the view it renders.
type Route struct {
	Path   string
	View   domain.ViewID
	Access Access
}

const (
	LoginPath   = "/login"
	DefaultPath = "/dashboard"
)

// DefaultRoutes is the clinic dashboard routing table. Several paths alias
// the same view; no state is tracked per alias.
func DefaultRoutes() []Route {
	return []Route{
		{Path: LoginPath, View: domain.ViewLogin, Access: AnonymousOnly},
		{Path: "/", Access: Entry},

		{Path: DefaultPath, View: domain.ViewDashboard},
		{Path: "/patients", View: domain.ViewPatients},
		{Path: "/appointments", View: domain.ViewAppointments},
		{Path: "/consultations", View: domain.ViewDashboard},
		{Path: "/lab-tests", View: domain.ViewLabTests},
		{Path: "/prescriptions", View: domain.ViewPrescriptions},
		{Path: "/payments", View: domain.ViewPayments},
		{Path: "/drug-store", View: domain.ViewDrugStore},
		{Path: "/dispensing", View: domain.ViewPrescriptions},
		{Path: "/injections", View: domain.ViewPrescriptions},
		{Path: "/users", View: domain.ViewSettings},
		{Path: "/analytics", View: domain.ViewDashboard},
		{Path: "/settings", View: domain.ViewSettings},
	}
}
