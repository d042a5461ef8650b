package leave

import "context"

type LeaveService interface {
	// UpdateStatus decides a pending request; approval consumes the leave balance.
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (LeaveRequestResponse, error)

	ListPending(ctx context.Context, filter PendingFilter) ([]LeaveRequestResponse, error)
	ListMonthly(ctx context.Context, filter DateRangeFilter) ([]LeaveRequestResponse, error)
	CountByType(ctx context.Context, filter DateRangeFilter) ([]LeaveTypeCountResponse, error)
	YearEndBalances(ctx context.Context, filter YearFilter) ([]LeaveBalanceResponse, error)

	// OpenYear carries last year's allowances into year for users without a balance.
	OpenYear(ctx context.Context, year int) (int64, error)
}
