package hr

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/hr"
	"golang.org/x/sync/errgroup"
)

type HRServiceImpl struct {
	hr.CaseRepository
}

func NewHRService(repo hr.CaseRepository) hr.HRService {
	return &HRServiceImpl{
		CaseRepository: repo,
	}
}

// List implements hr.HRService.
func (s *HRServiceImpl) List(ctx context.Context, userID string, kind hr.Kind) ([]hr.CaseResponse, error) {
	if !kind.IsValid() {
		return nil, hr.ErrUnknownKind
	}

	cases, err := s.CaseRepository.ListByUser(ctx, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s cases: %w", kind, err)
	}

	responses := make([]hr.CaseResponse, 0, len(cases))
	for _, c := range cases {
		responses = append(responses, hr.NewCaseResponse(c))
	}
	return responses, nil
}

// Create implements hr.HRService.
func (s *HRServiceImpl) Create(ctx context.Context, kind hr.Kind, req hr.CreateCaseRequest) (hr.CaseResponse, error) {
	if !kind.IsValid() {
		return hr.CaseResponse{}, hr.ErrUnknownKind
	}
	if err := req.Validate(); err != nil {
		return hr.CaseResponse{}, err
	}

	created, err := s.CaseRepository.Create(ctx, req.ToCase(kind))
	if err != nil {
		return hr.CaseResponse{}, fmt.Errorf("failed to create %s case: %w", kind, err)
	}

	slog.Info("hr case created", "case_id", created.ID, "type", kind, "user_id", created.UserID)
	return hr.NewCaseResponse(created), nil
}

// Dashboard implements hr.HRService.
func (s *HRServiceImpl) Dashboard(ctx context.Context, userID string) (hr.DashboardResponse, error) {
	var resp hr.DashboardResponse

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		cases, err := s.List(gCtx, userID, hr.KindGrievance)
		resp.Grievances = cases
		return err
	})

	g.Go(func() error {
		cases, err := s.List(gCtx, userID, hr.KindMeeting)
		resp.Meetings = cases
		return err
	})

	g.Go(func() error {
		cases, err := s.List(gCtx, userID, hr.KindTraining)
		resp.Trainings = cases
		return err
	})

	if err := g.Wait(); err != nil {
		return hr.DashboardResponse{}, err
	}
	return resp, nil
}
