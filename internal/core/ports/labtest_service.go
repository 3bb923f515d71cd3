package ports

import (
	"context"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
)

// LabTestRow is a lab test together with the actions visible to the viewer.
type LabTestRow struct {
	domain.LabTest
	Actions []domain.LabTestAction `json:"actions"`
}

// LabTestCounts holds the size of each status tab.
type LabTestCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

// LabTestBoard is the lab-tests page model for one search term and role.
type LabTestBoard struct {
	Search     string        `json:"search"`
	Pending    []LabTestRow  `json:"pending"`
	InProgress []LabTestRow  `json:"in_progress"`
	Completed  []LabTestRow  `json:"completed"`
	Counts     LabTestCounts `json:"counts"`
}

// LabTestService implements the lab-tests page operations.
type LabTestService interface {
	Board(ctx context.Context, search string, role domain.Role) (*LabTestBoard, error)
	Get(ctx context.Context, id string) (*domain.LabTest, error)
	Start(ctx context.Context, id string, actor *domain.Identity) (*domain.LabTest, error)
	UploadResult(ctx context.Context, id, result string, actor *domain.Identity) (*domain.LabTest, error)
}
