package leave

import (
	"strconv"
	"time"

	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/validator"
)

// ========================================
// DECISION DTOs
// ========================================

type UpdateStatusRequest struct {
	LeaveID string        `json:"leaveId"`
	Status  RequestStatus `json:"status"`
	Reason  *string       `json:"reason,omitempty"`

	// Set from the authenticated session, never from the body
	DecidedBy string `json:"-"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("leaveId", r.LeaveID)
	if !validator.IsEmpty(r.LeaveID) && !validator.IsValidUUID(r.LeaveID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveId",
			Message: "leaveId must be a valid UUID",
		})
	}

	errs.Required("status", string(r.Status))
	if !validator.IsEmpty(string(r.Status)) && !r.Status.IsDecision() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be 'approved' or 'rejected'",
		})
	}

	if r.Reason != nil {
		errs.MaxLength("reason", *r.Reason, 500)
	}

	return errs.Err()
}

// ========================================
// LISTING DTOs
// ========================================

type PendingFilter struct {
	Department string `json:"department"`
}

func (f *PendingFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Department != "" && f.Department != "all" && !validator.IsValidUUID(f.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must be 'all' or a valid department id",
		})
	}
	return errs.Err()
}

// DepartmentID returns nil when every department is requested.
func (f PendingFilter) DepartmentID() *string {
	if f.Department == "" || f.Department == "all" {
		return nil
	}
	return &f.Department
}

type DateRangeFilter struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (f *DateRangeFilter) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("startDate", f.StartDate)
	errs.Required("endDate", f.EndDate)
	if len(errs) > 0 {
		return errs.Err()
	}

	start, okStart := validator.IsValidDate(f.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "startDate must be in YYYY-MM-DD format"})
	}
	end, okEnd := validator.IsValidDate(f.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "endDate must be in YYYY-MM-DD format"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "endDate must not be before startDate"})
	}

	return errs.Err()
}

// Range returns the parsed window; call after Validate.
func (f DateRangeFilter) Range() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(f.StartDate)
	end, _ := validator.IsValidDate(f.EndDate)
	return start, end
}

type YearFilter struct {
	Year string `json:"year"`
}

func (f *YearFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Year != "" {
		y, err := strconv.Atoi(f.Year)
		if err != nil || y < 1900 || y > 9999 {
			errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be a four digit year"})
		}
	}
	return errs.Err()
}

type LeaveRequestResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	EmployeeName    *string    `json:"employee_name,omitempty"`
	LeaveTypeID     string     `json:"leave_type_id"`
	LeaveTypeName   *string    `json:"leave_type_name,omitempty"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	TotalDays       int        `json:"total_days"`
	Reason          *string    `json:"reason,omitempty"`
	Status          string     `json:"status"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	DecidedBy       *string    `json:"decided_by,omitempty"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func NewLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		EmployeeName:    r.EmployeeName,
		LeaveTypeID:     r.LeaveTypeID,
		LeaveTypeName:   r.LeaveTypeName,
		StartDate:       r.StartDate.Format("2006-01-02"),
		EndDate:         r.EndDate.Format("2006-01-02"),
		TotalDays:       r.Days(),
		Reason:          r.Reason,
		Status:          string(r.Status),
		RejectionReason: r.RejectionReason,
		DecidedBy:       r.DecidedBy,
		DecidedAt:       r.DecidedAt,
		CreatedAt:       r.CreatedAt,
	}
}

type LeaveTypeCountResponse struct {
	LeaveTypeID string `json:"leave_type_id"`
	Name        string `json:"name"`
	Count       int    `json:"count"`
}

type LeaveBalanceResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName *string `json:"leave_type_name,omitempty"`
	Year          int     `json:"year"`
	TotalDays     int     `json:"total_days"`
	UsedDays      int     `json:"used_days"`
	RemainingDays int     `json:"remaining_days"`
}

func NewLeaveBalanceResponse(b LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		EmployeeName:  b.EmployeeName,
		LeaveTypeID:   b.LeaveTypeID,
		LeaveTypeName: b.LeaveTypeName,
		Year:          b.Year,
		TotalDays:     b.TotalDays,
		UsedDays:      b.UsedDays,
		RemainingDays: b.RemainingDays(),
	}
}
