package attendance

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/attendance"
	"github.com/xuri/excelize/v2"
)

const (
	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// 12-hour clock with meridiem, e.g. "09:40 AM"
	displayTimeLayout = "03:04 PM"
	xlsxSheetName     = "Attendance"
)

var (
	summaryHeader   = []string{"Date", "Shift", "Total", "Present", "Absent", "Late", "Early Out", "Overtime"}
	employeesHeader = []string{"Employee ID", "Name", "Shift", "Status", "Clock In", "Clock Out"}
	flaggedHeader   = []string{"Employee ID", "Name", "Issue", "Details"}
)

// Exporter renders an attendance report as delimited rows.
type Exporter struct {
	loc *time.Location
}

func NewExporter(loc *time.Location) *Exporter {
	if loc == nil {
		loc = time.UTC
	}
	return &Exporter{loc: loc}
}

// Rows returns the header row followed by the data rows for reportType.
func (e *Exporter) Rows(reportType attendance.ReportType, report attendance.AttendanceReport) ([][]string, error) {
	switch reportType {
	case attendance.ReportTypeSummary:
		s := report.Summary
		return [][]string{
			summaryHeader,
			{
				report.Date,
				report.Shift,
				strconv.Itoa(s.Total),
				strconv.Itoa(s.Attended()),
				strconv.Itoa(s.Absent),
				strconv.Itoa(s.Late),
				strconv.Itoa(s.EarlyOut),
				strconv.Itoa(s.Overtime),
			},
		}, nil

	case attendance.ReportTypeEmployees:
		rows := [][]string{employeesHeader}
		for _, ea := range report.EmployeeAttendances {
			rows = append(rows, []string{
				ea.UserID,
				ea.Name,
				string(ea.Shift),
				ea.Status.Label(),
				e.formatClock(ea.ClockIn),
				e.formatClock(ea.ClockOut),
			})
		}
		return rows, nil

	case attendance.ReportTypeFlagged:
		rows := [][]string{flaggedHeader}
		for _, ea := range report.FlaggedEmployees {
			rows = append(rows, []string{
				ea.UserID,
				ea.Name,
				ea.Status.Label(),
				e.flagDetails(ea),
			})
		}
		return rows, nil
	}

	return nil, fmt.Errorf("%w: %q", attendance.ErrUnsupportedReportType, reportType)
}

// CSV writes rows with RFC 4180 quoting; names are free text.
func (e *Exporter) CSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

// XLSX writes rows into a single-sheet workbook.
func (e *Exporter) XLSX(rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(xlsxSheetName, cell, &rows[i]); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// File renders the report in the requested format.
func (e *Exporter) File(reportType attendance.ReportType, format attendance.ExportFormat, report attendance.AttendanceReport) (attendance.ExportFile, error) {
	rows, err := e.Rows(reportType, report)
	if err != nil {
		return attendance.ExportFile{}, err
	}

	var (
		content     []byte
		contentType string
	)
	switch format {
	case attendance.ExportFormatCSV:
		content, err = e.CSV(rows)
		contentType = contentTypeCSV
	case attendance.ExportFormatXLSX:
		content, err = e.XLSX(rows)
		contentType = contentTypeXLSX
	default:
		return attendance.ExportFile{}, fmt.Errorf("%w: %q", attendance.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return attendance.ExportFile{}, err
	}

	return attendance.ExportFile{
		Filename:    fmt.Sprintf("attendance-%s-%s.%s", reportType, report.Date, format),
		ContentType: contentType,
		Content:     content,
	}, nil
}

func (e *Exporter) formatClock(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.In(e.loc).Format(displayTimeLayout)
}

func (e *Exporter) flagDetails(ea attendance.EmployeeAttendance) string {
	switch ea.Status {
	case attendance.StatusLate:
		return "Arrived at " + e.formatClock(ea.ClockIn)
	case attendance.StatusEarlyOut, attendance.StatusOvertime:
		return "Left at " + e.formatClock(ea.ClockOut)
	}
	return "-"
}
