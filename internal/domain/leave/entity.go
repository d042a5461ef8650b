package leave

import (
	"time"
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// IsDecision reports whether s is a status a pending request can move to.
func (s RequestStatus) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

type LeaveType struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

type LeaveRequest struct {
	ID              string
	UserID          string
	LeaveTypeID     string
	StartDate       time.Time
	EndDate         time.Time
	Reason          *string
	Status          RequestStatus
	RejectionReason *string
	DecidedBy       *string
	DecidedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO
	EmployeeName  *string
	LeaveTypeName *string
}

// Days is the inclusive number of calendar days the request covers.
func (r LeaveRequest) Days() int {
	return InclusiveDays(r.StartDate, r.EndDate)
}

// InclusiveDays counts calendar days from start to end, both included.
// 2025-01-10 to 2025-01-12 is 3 days. Order does not matter.
func InclusiveDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	diff := e.Sub(s)
	if diff < 0 {
		diff = -diff
	}
	return int(diff/(24*time.Hour)) + 1
}

// LeaveBalance is one (user, leave type, year) allowance.
type LeaveBalance struct {
	ID          string
	UserID      string
	LeaveTypeID string
	Year        int
	TotalDays   int
	UsedDays    int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	EmployeeName  *string
	LeaveTypeName *string
}

func (b LeaveBalance) RemainingDays() int {
	return b.TotalDays - b.UsedDays
}

// LeaveTypeCount is the number of distinct employees on one leave type in a window.
type LeaveTypeCount struct {
	LeaveTypeID string
	Name        string
	Count       int
}
