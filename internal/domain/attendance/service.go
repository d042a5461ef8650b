package attendance

import (
	"context"
)

// AttendanceService defines the attendance reporting operations
type AttendanceService interface {
	// GetReport classifies and aggregates the records of one reporting window
	GetReport(ctx context.Context, filter ReportFilter) (AttendanceReport, error)

	// Export renders a report as a downloadable file
	Export(ctx context.Context, req ExportRequest) (ExportFile, error)
}
