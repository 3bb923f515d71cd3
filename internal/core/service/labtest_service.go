package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
	"github.com/clinicdesk/clinic-portal/internal/core/ports"
)

type LabTestService struct {
	repo   ports.LabTestRepository
	now    func() time.Time
	logger zerolog.Logger
}

func NewLabTestService(repo ports.LabTestRepository, logger zerolog.Logger) *LabTestService {
	return &LabTestService{repo: repo, now: time.Now, logger: logger}
}

// Board filters tests by patient name or test type and groups them into the
// status tabs. Each row carries the actions visible to role.
func (s *LabTestService) Board(ctx context.Context, search string, role domain.Role) (*ports.LabTestBoard, error) {
	tests, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lab tests: %w", err)
	}

	term := strings.ToLower(strings.TrimSpace(search))
	board := &ports.LabTestBoard{
		Search:     search,
		Pending:    []ports.LabTestRow{},
		InProgress: []ports.LabTestRow{},
		Completed:  []ports.LabTestRow{},
	}
	for _, t := range tests {
		if !matches(t, term) {
			continue
		}
		row := ports.LabTestRow{LabTest: t, Actions: t.ActionsFor(role)}
		switch t.Status {
		case domain.LabTestPending:
			board.Pending = append(board.Pending, row)
		case domain.LabTestInProgress:
			board.InProgress = append(board.InProgress, row)
		case domain.LabTestCompleted:
			board.Completed = append(board.Completed, row)
		}
	}
	board.Counts = ports.LabTestCounts{
		Pending:    len(board.Pending),
		InProgress: len(board.InProgress),
		Completed:  len(board.Completed),
	}
	return board, nil
}

func matches(t domain.LabTest, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.PatientName), term) ||
		strings.Contains(strings.ToLower(t.TestType), term)
}

func (s *LabTestService) Get(ctx context.Context, id string) (*domain.LabTest, error) {
	return s.repo.FindByID(ctx, id)
}

// Start moves a paid pending test to in-progress. Only laboratory staff may
// start tests.
func (s *LabTestService) Start(ctx context.Context, id string, actor *domain.Identity) (*domain.LabTest, error) {
	if actor == nil || actor.Role != domain.RoleLaboratory {
		return nil, domain.ErrForbidden
	}

	test, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if test.Status != domain.LabTestPending || !test.IsPaid {
		return nil, fmt.Errorf("start %s: %w (status %s, paid %t)", id, domain.ErrInvalidLabTestState, test.Status, test.IsPaid)
	}

	test.Status = domain.LabTestInProgress
	if err := s.repo.Update(ctx, test); err != nil {
		return nil, fmt.Errorf("start %s: %w", id, err)
	}

	s.logger.Info().Str("lab_test", id).Str("actor", actor.ID).Msg("lab test started")
	return test, nil
}

// UploadResult records the result of an in-progress test and completes it.
func (s *LabTestService) UploadResult(ctx context.Context, id, result string, actor *domain.Identity) (*domain.LabTest, error) {
	if strings.TrimSpace(result) == "" {
		return nil, domain.ErrEmptyResult
	}
	if actor == nil || actor.Role != domain.RoleLaboratory {
		return nil, domain.ErrForbidden
	}

	test, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if test.Status != domain.LabTestInProgress {
		return nil, fmt.Errorf("upload result %s: %w (status %s)", id, domain.ErrInvalidLabTestState, test.Status)
	}

	now := s.now().UTC()
	test.Result = result
	test.ResultDate = &now
	test.Status = domain.LabTestCompleted
	if err := s.repo.Update(ctx, test); err != nil {
		return nil, fmt.Errorf("upload result %s: %w", id, err)
	}

	s.logger.Info().Str("lab_test", id).Str("actor", actor.ID).Msg("lab test result uploaded")
	return test, nil
}
