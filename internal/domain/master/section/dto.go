package section

import (
	"time"

	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/validator"
)

type UpsertSectionRequest struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
}

func (r *UpsertSectionRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("code", r.Code)
	if !validator.IsEmpty(r.Code) && !validator.IsValidCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 1-20 letters, digits, '.', '_' or '-'",
		})
	}

	errs.Required("name", r.Name)
	errs.MaxLength("name", r.Name, 100)

	errs.Required("department_id", r.DepartmentID)
	if !validator.IsEmpty(r.DepartmentID) && !validator.IsValidUUID(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid UUID",
		})
	}

	return errs.Err()
}

type DepartmentRef struct {
	ID   string  `json:"id"`
	Code *string `json:"code,omitempty"`
	Name *string `json:"name,omitempty"`
}

type SectionResponse struct {
	ID         string        `json:"id"`
	Code       string        `json:"code"`
	Name       string        `json:"name"`
	Department DepartmentRef `json:"department"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func NewSectionResponse(s Section) SectionResponse {
	return SectionResponse{
		ID:   s.ID,
		Code: s.Code,
		Name: s.Name,
		Department: DepartmentRef{
			ID:   s.DepartmentID,
			Code: s.DepartmentCode,
			Name: s.DepartmentName,
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
