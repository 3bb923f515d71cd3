package domain

import "time"

// LabTestStatus represents the processing state of a lab test.
type LabTestStatus string

const (
	LabTestPending    LabTestStatus = "pending"
	LabTestInProgress LabTestStatus = "in-progress"
	LabTestCompleted  LabTestStatus = "completed"
)

// LabTestAction is a button a page may show next to a lab test.
type LabTestAction string

const (
	ActionStartTest    LabTestAction = "start"
	ActionUploadResult LabTestAction = "upload_result"
	ActionViewResult   LabTestAction = "view_result"
)

// LabTest is a laboratory request for a patient.
type LabTest struct {
	ID          string        `json:"id"`
	PatientName string        `json:"patient_name"`
	TestType    string        `json:"test_type"`
	RequestedBy string        `json:"requested_by"`
	RequestDate time.Time     `json:"request_date"`
	ResultDate  *time.Time    `json:"result_date,omitempty"`
	Fee         float64       `json:"fee"`
	IsPaid      bool          `json:"is_paid"`
	Status      LabTestStatus `json:"status"`
	Result      string        `json:"result,omitempty"`
}

// ActionsFor lists the actions visible to role for this test.
func (t LabTest) ActionsFor(role Role) []LabTestAction {
	actions := []LabTestAction{}
	switch t.Status {
	case LabTestPending:
		if t.IsPaid && role == RoleLaboratory {
			actions = append(actions, ActionStartTest)
		}
	case LabTestInProgress:
		if role == RoleLaboratory {
			actions = append(actions, ActionUploadResult)
		}
	case LabTestCompleted:
		actions = append(actions, ActionViewResult)
	}
	return actions
}
