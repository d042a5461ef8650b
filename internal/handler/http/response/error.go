package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/company"
	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/hr"
	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/master/entry"
	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/master/section"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/storage"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/validator"
	"github.com/cmlabs-hris/workforce-admin-go/internal/service/file"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Master data errors carry the resource label, e.g. "designation not found"
	var kindErr *entry.KindError
	if errors.As(err, &kindErr) {
		switch {
		case errors.Is(err, entry.ErrNotFound):
			NotFound(w, kindErr.Error())
			return
		case errors.Is(err, entry.ErrCodeExists), errors.Is(err, entry.ErrInUse):
			Conflict(w, kindErr.Error())
			return
		}
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrUnsupportedReportType),
		errors.Is(err, attendance.ErrUnsupportedFormat):
		BadRequest(w, err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveBalanceNotFound):
		NotFound(w, "Leave balance not found for this employee and year")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Master data errors
	case errors.Is(err, entry.ErrUnknownKind):
		NotFound(w, "Unknown master data resource")
	case errors.Is(err, section.ErrSectionNotFound):
		NotFound(w, "Section not found")
	case errors.Is(err, section.ErrSectionCodeExists):
		Conflict(w, "Section code already exists")
	case errors.Is(err, section.ErrDepartmentNotFound):
		BadRequest(w, "Department does not exist", map[string]string{"department_id": "unknown department"})

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyCodeExists):
		Conflict(w, "Company code already exists")

	// Uploads
	case errors.Is(err, file.ErrUnsupportedFileType),
		errors.Is(err, file.ErrInvalidImage),
		errors.Is(err, file.ErrFileTooLarge),
		errors.Is(err, file.ErrImageTooLarge),
		errors.Is(err, storage.ErrInvalidPath):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, storage.ErrFileNotFound):
		NotFound(w, "File not found")

	// HR cases
	case errors.Is(err, hr.ErrUnknownKind):
		NotFound(w, "Unknown HR case type")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
