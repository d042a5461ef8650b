package hr

import (
	"time"

	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

type CreateCaseRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Date        string     `json:"date"`
	Status      CaseStatus `json:"status,omitempty"`

	UserID string `json:"-"`
}

func (r *CreateCaseRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("title", r.Title)
	errs.MaxLength("title", r.Title, 255)
	errs.Required("date", r.Date)
	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}
	if r.Status != "" && !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of open, in_progress, closed"})
	}

	return errs.Err()
}

// ToCase assumes Validate passed.
func (r CreateCaseRequest) ToCase(kind Kind) Case {
	date, _ := time.Parse(dateLayout, r.Date)
	status := r.Status
	if status == "" {
		status = CaseStatusOpen
	}
	return Case{
		UserID:      r.UserID,
		Kind:        kind,
		Title:       r.Title,
		Description: r.Description,
		Date:        date,
		Status:      status,
	}
}

type CaseResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Kind        Kind       `json:"type"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Date        string     `json:"date"`
	Status      CaseStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewCaseResponse(c Case) CaseResponse {
	return CaseResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		Kind:        c.Kind,
		Title:       c.Title,
		Description: c.Description,
		Date:        c.Date.Format(dateLayout),
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
	}
}

type DashboardResponse struct {
	Grievances []CaseResponse `json:"grievances"`
	Meetings   []CaseResponse `json:"meetings"`
	Trainings  []CaseResponse `json:"trainings"`
}
