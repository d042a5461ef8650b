package company

import (
	"fmt"
	"io"
	"time"

	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/validator"
)

// UpsertCompanyRequest is used for both create and full update.
type UpsertCompanyRequest struct {
	Code                    string                  `json:"code"`
	Name                    string                  `json:"name"`
	Address1                string                  `json:"address1"`
	Address2                *string                 `json:"address2,omitempty"`
	State                   *string                 `json:"state,omitempty"`
	City                    string                  `json:"city"`
	PostalCode              string                  `json:"postal_code"`
	LogoURL                 *string                 `json:"logo_url,omitempty"`
	Notifications           NotificationSettings    `json:"notifications"`
	DailyRate               DailyRate               `json:"daily_rate"`
	OrganizationWorkingDays *int                    `json:"organization_working_days,omitempty"`
	EPF                     EPFSettings             `json:"epf"`
	ESI                     ESISettings             `json:"esi"`
	ProfessionalTax         ProfessionalTaxSettings `json:"professional_tax"`
}

func (r *UpsertCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("code", r.Code)
	if !validator.IsEmpty(r.Code) && !validator.IsValidCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 1-20 letters, digits, '.', '_' or '-'",
		})
	}
	errs.Required("name", r.Name)
	errs.MaxLength("name", r.Name, 255)
	errs.Required("address1", r.Address1)
	errs.Required("city", r.City)
	errs.Required("postal_code", r.PostalCode)
	errs.MaxLength("postal_code", r.PostalCode, 20)

	if r.DailyRate != "" && !r.DailyRate.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_rate",
			Message: "daily_rate must be one of calendar, working, fixed",
		})
	}

	if d := r.OrganizationWorkingDays; d != nil && (*d < 1 || *d > 31) {
		errs = append(errs, validator.ValidationError{
			Field:   "organization_working_days",
			Message: "organization_working_days must be between 1 and 31",
		})
	}

	percent := func(field string, v *float64) {
		if v != nil && (*v < 0 || *v > 100) {
			errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be between 0 and 100"})
		}
	}
	percent("epf.employee_contribution", r.EPF.EmployeeContribution)
	percent("epf.employer_contribution", r.EPF.EmployerContribution)
	percent("esi.employee_contribution", r.ESI.EmployeeContribution)
	percent("esi.employer_contribution", r.ESI.EmployerContribution)

	pt := r.ProfessionalTax
	if pt.SlabType != "" && pt.SlabType != SlabTypeMonthly && pt.SlabType != SlabTypeHalfYearly {
		errs = append(errs, validator.ValidationError{
			Field:   "professional_tax.slab_type",
			Message: "slab_type must be monthly or half_yearly",
		})
	}
	for i, slab := range pt.Slabs {
		field := fmt.Sprintf("professional_tax.slabs[%d]", i)
		if slab.StartRange < 0 || slab.Amount < 0 {
			errs = append(errs, validator.ValidationError{Field: field, Message: "start_range and amount must not be negative"})
		} else if slab.EndRange != nil && *slab.EndRange < slab.StartRange {
			errs = append(errs, validator.ValidationError{Field: field, Message: "end_range must not be below start_range"})
		}
	}

	return errs.Err()
}

// ToCompany maps the request onto an entity with defaults applied.
func (r UpsertCompanyRequest) ToCompany() Company {
	return Company{
		Code:                    r.Code,
		Name:                    r.Name,
		Address1:                r.Address1,
		Address2:                r.Address2,
		State:                   r.State,
		City:                    r.City,
		PostalCode:              r.PostalCode,
		LogoURL:                 r.LogoURL,
		Notifications:           r.Notifications,
		DailyRate:               r.DailyRate,
		OrganizationWorkingDays: r.OrganizationWorkingDays,
		EPF:                     r.EPF,
		ESI:                     r.ESI,
		ProfessionalTax:         r.ProfessionalTax,
	}.WithDefaults()
}

type CompanyResponse struct {
	ID                      string                  `json:"id"`
	Code                    string                  `json:"code"`
	Name                    string                  `json:"name"`
	Address1                string                  `json:"address1"`
	Address2                *string                 `json:"address2,omitempty"`
	State                   *string                 `json:"state,omitempty"`
	City                    string                  `json:"city"`
	PostalCode              string                  `json:"postal_code"`
	LogoURL                 *string                 `json:"logo_url,omitempty"`
	Notifications           NotificationSettings    `json:"notifications"`
	DailyRate               DailyRate               `json:"daily_rate"`
	OrganizationWorkingDays *int                    `json:"organization_working_days,omitempty"`
	EPF                     EPFSettings             `json:"epf"`
	ESI                     ESISettings             `json:"esi"`
	ProfessionalTax         ProfessionalTaxSettings `json:"professional_tax"`
	CreatedAt               time.Time               `json:"created_at"`
	UpdatedAt               time.Time               `json:"updated_at"`
}

func NewCompanyResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:                      c.ID,
		Code:                    c.Code,
		Name:                    c.Name,
		Address1:                c.Address1,
		Address2:                c.Address2,
		State:                   c.State,
		City:                    c.City,
		PostalCode:              c.PostalCode,
		LogoURL:                 c.LogoURL,
		Notifications:           c.Notifications,
		DailyRate:               c.DailyRate,
		OrganizationWorkingDays: c.OrganizationWorkingDays,
		EPF:                     c.EPF,
		ESI:                     c.ESI,
		ProfessionalTax:         c.ProfessionalTax,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}
}

type UploadLogoRequest struct {
	CompanyCode string
	Filename    string
	File        io.Reader
}

func (r *UploadLogoRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("company_code", r.CompanyCode)
	if !validator.IsEmpty(r.CompanyCode) && !validator.IsValidCode(r.CompanyCode) {
		errs = append(errs, validator.ValidationError{Field: "company_code", Message: "company_code is not a valid code"})
	}
	if r.File == nil {
		errs = append(errs, validator.ValidationError{Field: "file", Message: "file is required"})
	}

	return errs.Err()
}

type LogoResponse struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}
