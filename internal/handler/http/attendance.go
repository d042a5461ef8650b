package http

import (
	"net/http"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce-admin-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetReport(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

func reportFilterFromQuery(r *http.Request) attendance.ReportFilter {
	q := r.URL.Query()
	return attendance.ReportFilter{
		Date:   q.Get("date"),
		Shift:  q.Get("shift"),
		UserID: q.Get("userId"),
	}
}

// GetReport implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.attendanceService.GetReport(r.Context(), reportFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if report.Empty {
		response.SuccessWithMessage(w, "No attendance records for this date", report)
		return
	}
	response.Success(w, report)
}

// Download implements AttendanceHandler.
func (h *attendanceHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := attendance.ExportRequest{
		ReportFilter: reportFilterFromQuery(r),
		Type:         attendance.ReportType(q.Get("type")),
		Format:       attendance.ExportFormat(q.Get("format")),
	}

	file, err := h.attendanceService.Export(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, file.Filename, file.ContentType, file.Content)
}
