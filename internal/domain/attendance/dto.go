package attendance

import (
	"time"

	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/validator"
)

// ========================================
// REPORT DTOs
// ========================================

const ShiftAll = "all"

type ReportFilter struct {
	Date   string `json:"date"`
	Shift  string `json:"shift"`
	UserID string `json:"userId,omitempty"`
}

func (f *ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(f.Date) {
		if _, ok := validator.IsValidDate(f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Shift != "" && f.Shift != ShiftAll && !Shift(f.Shift).IsKnown() {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be one of all, morning, evening, night",
		})
	}

	if f.UserID != "" && !validator.IsValidUUID(f.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Message: "userId must be a valid UUID",
		})
	}

	return errs.Err()
}

// ShiftFilter returns the shift to filter on, or nil for all shifts.
func (f ReportFilter) ShiftFilter() *Shift {
	if f.Shift == "" || f.Shift == ShiftAll {
		return nil
	}
	s := Shift(f.Shift)
	return &s
}

// ShiftLabel is the value written in the Shift column of summary exports.
func (f ReportFilter) ShiftLabel() string {
	if f.Shift == "" {
		return ShiftAll
	}
	return f.Shift
}

// RecordFilter is what the repository needs to fetch one reporting window.
type RecordFilter struct {
	Date   time.Time
	Shift  *Shift
	UserID *string
}

type AttendanceResponse struct {
	ID       string     `json:"id"`
	UserID   string     `json:"userId"`
	Date     string     `json:"date"`
	Shift    Shift      `json:"shift"`
	ClockIn  *time.Time `json:"clockIn"`
	ClockOut *time.Time `json:"clockOut"`
}

type EmployeeAttendance struct {
	UserID   string     `json:"userId"`
	Name     string     `json:"name"`
	Status   Status     `json:"status"`
	Shift    Shift      `json:"shift"`
	ClockIn  *time.Time `json:"clockIn"`
	ClockOut *time.Time `json:"clockOut"`
}

// Summary holds per-status counts for one reporting window.
// Present+Absent+Late+EarlyOut+Overtime+Unknown == Total.
type Summary struct {
	Total    int `json:"total"`
	Present  int `json:"present"`
	Absent   int `json:"absent"`
	Late     int `json:"late"`
	EarlyOut int `json:"earlyOut"`
	Overtime int `json:"overtime"`
	Unknown  int `json:"unknown"`
}

// IsEmpty distinguishes "no data" from a window where every count is zero by coincidence.
func (s Summary) IsEmpty() bool {
	return s.Total == 0
}

// Attended counts records with both clock-in and clock-out.
func (s Summary) Attended() int {
	return s.Present + s.Late + s.EarlyOut + s.Overtime
}

type AttendanceReport struct {
	Date                string               `json:"date"`
	Shift               string               `json:"shift"`
	Attendances         []AttendanceResponse `json:"attendances"`
	EmployeeAttendances []EmployeeAttendance `json:"employeeAttendances"`
	FlaggedEmployees    []EmployeeAttendance `json:"flaggedEmployees"`
	Summary             Summary              `json:"summary"`
	Empty               bool                 `json:"empty"`
}

// ========================================
// EXPORT DTOs
// ========================================

type ReportType string

const (
	ReportTypeSummary   ReportType = "summary"
	ReportTypeEmployees ReportType = "employees"
	ReportTypeFlagged   ReportType = "flagged"
)

type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

type ExportRequest struct {
	ReportFilter
	Type   ReportType   `json:"type"`
	Format ExportFormat `json:"format"`
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := r.ReportFilter.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	switch r.Type {
	case "", ReportTypeSummary, ReportTypeEmployees, ReportTypeFlagged:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of summary, employees, flagged",
		})
	}

	switch r.Format {
	case "", ExportFormatCSV, ExportFormatXLSX:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be csv or xlsx",
		})
	}

	return errs.Err()
}

// ExportFile is a rendered report ready to be sent as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
