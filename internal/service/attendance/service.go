package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/attendance"
)

const dateLayout = "2006-01-02"

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	classifier *Classifier
	exporter   *Exporter
	location   *time.Location
	now        func() time.Time
}

func NewAttendanceService(repo attendance.AttendanceRepository, table attendance.PolicyTable) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		classifier:           NewClassifier(table),
		exporter:             NewExporter(table.Location()),
		location:             table.Location(),
		now:                  time.Now,
	}
}

// GetReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetReport(ctx context.Context, filter attendance.ReportFilter) (attendance.AttendanceReport, error) {
	if err := filter.Validate(); err != nil {
		return attendance.AttendanceReport{}, err
	}

	date, err := s.reportDate(filter.Date)
	if err != nil {
		return attendance.AttendanceReport{}, err
	}

	recordFilter := attendance.RecordFilter{
		Date:  date,
		Shift: filter.ShiftFilter(),
	}
	if filter.UserID != "" {
		recordFilter.UserID = &filter.UserID
	}

	records, err := s.AttendanceRepository.List(ctx, recordFilter)
	if err != nil {
		return attendance.AttendanceReport{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	attendances := make([]attendance.AttendanceResponse, 0, len(records))
	employees := make([]attendance.EmployeeAttendance, 0, len(records))
	for _, r := range records {
		attendances = append(attendances, attendance.AttendanceResponse{
			ID:       r.ID,
			UserID:   r.UserID,
			Date:     r.Date.Format(dateLayout),
			Shift:    r.Shift,
			ClockIn:  r.ClockIn,
			ClockOut: r.ClockOut,
		})
		employees = append(employees, attendance.EmployeeAttendance{
			UserID:   r.UserID,
			Name:     employeeName(r),
			Status:   s.classifier.Classify(r),
			Shift:    r.Shift,
			ClockIn:  r.ClockIn,
			ClockOut: r.ClockOut,
		})
	}

	summary, flagged := Aggregate(employees)

	return attendance.AttendanceReport{
		Date:                date.Format(dateLayout),
		Shift:               filter.ShiftLabel(),
		Attendances:         attendances,
		EmployeeAttendances: employees,
		FlaggedEmployees:    flagged,
		Summary:             summary,
		Empty:               summary.IsEmpty(),
	}, nil
}

// Export implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Export(ctx context.Context, req attendance.ExportRequest) (attendance.ExportFile, error) {
	if err := req.Validate(); err != nil {
		return attendance.ExportFile{}, err
	}
	if req.Type == "" {
		req.Type = attendance.ReportTypeSummary
	}
	if req.Format == "" {
		req.Format = attendance.ExportFormatCSV
	}

	report, err := s.GetReport(ctx, req.ReportFilter)
	if err != nil {
		return attendance.ExportFile{}, err
	}

	return s.exporter.File(req.Type, req.Format, report)
}

// reportDate defaults to today in the policy location.
func (s *AttendanceServiceImpl) reportDate(value string) (time.Time, error) {
	if value == "" {
		now := s.now().In(s.location)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location), nil
	}
	date, err := time.ParseInLocation(dateLayout, value, s.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid report date %q: %w", value, err)
	}
	return date, nil
}

// employeeName falls back to a placeholder for users without a profile.
func employeeName(r attendance.Record) string {
	if r.EmployeeName != nil && *r.EmployeeName != "" {
		return *r.EmployeeName
	}
	id := r.UserID
	if len(id) > 5 {
		id = id[:5]
	}
	return "Employee " + id
}
