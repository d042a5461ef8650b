package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// Decide moves a pending request to status. It returns pgx.ErrNoRows when the
	// request is no longer pending, so a decision is applied at most once.
	Decide(ctx context.Context, id string, status RequestStatus, reason *string, decidedBy *string) (LeaveRequest, error)

	// ListPending returns pending requests ordered by start date, optionally
	// narrowed to the requesters of one department.
	ListPending(ctx context.Context, departmentID *string) ([]LeaveRequest, error)

	// ListOverlapping returns requests that touch [start, end] ordered by start date.
	ListOverlapping(ctx context.Context, start, end time.Time) ([]LeaveRequest, error)

	// CountEmployeesByType counts distinct users on leave in [start, end] per leave
	// type, including types with no requests, most used first.
	CountEmployeesByType(ctx context.Context, start, end time.Time) ([]LeaveTypeCount, error)
}

type LeaveBalanceRepository interface {
	// IncrementUsedDays adds days to used_days in a single statement and reports
	// whether a balance row existed.
	IncrementUsedDays(ctx context.Context, userID, leaveTypeID string, year, days int) (bool, error)

	// ListByYear returns the balances of year ordered by total days, largest first.
	ListByYear(ctx context.Context, year int) ([]LeaveBalance, error)

	// OpenYear creates the balances of year from the previous year's allowance
	// where none exist yet, and returns how many were created.
	OpenYear(ctx context.Context, year int) (int64, error)
}
