package memory

import (
	"context"
	"sync"
	"time"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
)

// LabTestRepository stores lab tests in insertion order.
type LabTestRepository struct {
	mu    sync.RWMutex
	tests []domain.LabTest
}

// NewLabTestRepository copies seed so callers cannot mutate stored records.
func NewLabTestRepository(seed []domain.LabTest) *LabTestRepository {
	tests := make([]domain.LabTest, len(seed))
	copy(tests, seed)
	return &LabTestRepository{tests: tests}
}

func (r *LabTestRepository) List(_ context.Context) ([]domain.LabTest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.LabTest, len(r.tests))
	copy(out, r.tests)
	return out, nil
}

func (r *LabTestRepository) FindByID(_ context.Context, id string) (*domain.LabTest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tests {
		if t.ID == id {
			found := t
			return &found, nil
		}
	}
	return nil, domain.ErrLabTestNotFound
}

func (r *LabTestRepository) Update(_ context.Context, test *domain.LabTest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tests {
		if r.tests[i].ID == test.ID {
			r.tests[i] = *test
			return nil
		}
	}
	return domain.ErrLabTestNotFound
}

// MockLabTests is the demo data set shown on the lab-tests page.
func MockLabTests() []domain.LabTest {
	day := func(d int) time.Time { return time.Date(2024, time.January, d, 9, 0, 0, 0, time.UTC) }
	resulted := day(16)
	return []domain.LabTest{
		{ID: "LT001", PatientName: "John Smith", TestType: "Complete Blood Count", RequestedBy: "Dr. Michael Chen", RequestDate: day(15), Fee: 45, IsPaid: true, Status: domain.LabTestPending},
		{ID: "LT002", PatientName: "Maria Garcia", TestType: "Lipid Panel", RequestedBy: "Dr. Michael Chen", RequestDate: day(15), Fee: 60, IsPaid: false, Status: domain.LabTestPending},
		{ID: "LT003", PatientName: "Robert Wilson", TestType: "Blood Glucose", RequestedBy: "Dr. Michael Chen", RequestDate: day(14), Fee: 25, IsPaid: true, Status: domain.LabTestInProgress},
		{ID: "LT004", PatientName: "Linda Martinez", TestType: "Urinalysis", RequestedBy: "Dr. Michael Chen", RequestDate: day(13), ResultDate: &resulted, Fee: 30, IsPaid: true, Status: domain.LabTestCompleted, Result: "All values within normal range."},
		{ID: "LT005", PatientName: "David Lee", TestType: "Thyroid Panel", RequestedBy: "Dr. Michael Chen", RequestDate: day(16), Fee: 80, IsPaid: true, Status: domain.LabTestPending},
	}
}
