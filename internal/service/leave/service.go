package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type LeaveServiceImpl struct {
	tx database.Transactor
	leave.LeaveRequestRepository
	leave.LeaveBalanceRepository
	now func() time.Time
}

func NewLeaveService(tx database.Transactor, requestRepo leave.LeaveRequestRepository, balanceRepo leave.LeaveBalanceRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:                     tx,
		LeaveRequestRepository: requestRepo,
		LeaveBalanceRepository: balanceRepo,
		now:                    time.Now,
	}
}

// UpdateStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var decidedBy *string
	if req.DecidedBy != "" {
		decidedBy = &req.DecidedBy
	}

	var decided leave.LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.LeaveRequestRepository.GetByID(ctx, req.LeaveID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return leave.ErrLeaveRequestNotFound
			}
			return fmt.Errorf("failed to get leave request: %w", err)
		}
		if existing.Status != leave.StatusPending {
			return leave.ErrLeaveAlreadyProcessed
		}

		decided, err = s.LeaveRequestRepository.Decide(ctx, req.LeaveID, req.Status, req.Reason, decidedBy)
		if err != nil {
			// Another decision committed between the read and the update
			if errors.Is(err, pgx.ErrNoRows) {
				return leave.ErrLeaveAlreadyProcessed
			}
			return fmt.Errorf("failed to update leave status: %w", err)
		}

		if req.Status != leave.StatusApproved {
			return nil
		}

		found, err := s.LeaveBalanceRepository.IncrementUsedDays(ctx, existing.UserID, existing.LeaveTypeID, existing.StartDate.Year(), existing.Days())
		if err != nil {
			return fmt.Errorf("failed to update leave balance: %w", err)
		}
		if !found {
			return leave.ErrLeaveBalanceNotFound
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	slog.Info("leave request decided",
		"leave_id", decided.ID,
		"status", decided.Status,
		"days", decided.Days(),
		"decided_by", req.DecidedBy,
	)

	return leave.NewLeaveRequestResponse(decided), nil
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context, filter leave.PendingFilter) ([]leave.LeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.ListPending(ctx, filter.DepartmentID())
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	return toRequestResponses(requests), nil
}

// ListMonthly implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMonthly(ctx context.Context, filter leave.DateRangeFilter) ([]leave.LeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, end := filter.Range()
	requests, err := s.LeaveRequestRepository.ListOverlapping(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toRequestResponses(requests), nil
}

// CountByType implements leave.LeaveService.
func (s *LeaveServiceImpl) CountByType(ctx context.Context, filter leave.DateRangeFilter) ([]leave.LeaveTypeCountResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, end := filter.Range()
	counts, err := s.LeaveRequestRepository.CountEmployeesByType(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count leave requests by type: %w", err)
	}

	responses := make([]leave.LeaveTypeCountResponse, 0, len(counts))
	for _, c := range counts {
		responses = append(responses, leave.LeaveTypeCountResponse{
			LeaveTypeID: c.LeaveTypeID,
			Name:        c.Name,
			Count:       c.Count,
		})
	}
	return responses, nil
}

// YearEndBalances implements leave.LeaveService.
func (s *LeaveServiceImpl) YearEndBalances(ctx context.Context, filter leave.YearFilter) ([]leave.LeaveBalanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	year := s.now().Year()
	if filter.Year != "" {
		year, _ = strconv.Atoi(filter.Year)
	}

	balances, err := s.LeaveBalanceRepository.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}

	responses := make([]leave.LeaveBalanceResponse, 0, len(balances))
	for _, b := range balances {
		responses = append(responses, leave.NewLeaveBalanceResponse(b))
	}
	return responses, nil
}

// OpenYear implements leave.LeaveService.
func (s *LeaveServiceImpl) OpenYear(ctx context.Context, year int) (int64, error) {
	created, err := s.LeaveBalanceRepository.OpenYear(ctx, year)
	if err != nil {
		return 0, fmt.Errorf("failed to open leave year %d: %w", year, err)
	}
	return created, nil
}

func toRequestResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.NewLeaveRequestResponse(r))
	}
	return responses
}
