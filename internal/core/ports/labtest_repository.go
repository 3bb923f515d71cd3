package ports

import (
	"context"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
)

// LabTestRepository stores lab tests in insertion order.
type LabTestRepository interface {
	List(ctx context.Context) ([]domain.LabTest, error)
	FindByID(ctx context.Context, id string) (*domain.LabTest, error)
	Update(ctx context.Context, test *domain.LabTest) error
}
