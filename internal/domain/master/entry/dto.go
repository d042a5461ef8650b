package entry

import (
	"time"

	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/validator"
)

type UpsertEntryRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (r *UpsertEntryRequest) Validate() error {
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

	return errs.Err()
}

type EntryResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewEntryResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		Code:      e.Code,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
