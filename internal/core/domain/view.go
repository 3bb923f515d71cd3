package domain

// ViewID names a page component. Several paths may render the same view.
type ViewID string

const (
	ViewLogin         ViewID = "login"
	ViewDashboard     ViewID = "dashboard"
	ViewPatients      ViewID = "patients"
	ViewAppointments  ViewID = "appointments"
	ViewLabTests      ViewID = "lab-tests"
	ViewPrescriptions ViewID = "prescriptions"
	ViewPayments      ViewID = "payments"
	ViewDrugStore     ViewID = "drug-store"
	ViewSettings      ViewID = "settings"
	ViewNotFound      ViewID = "not-found"
)
