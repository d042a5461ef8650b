package company

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Company struct {
	ID                      string
	Code                    string
	Name                    string
	Address1                string
	Address2                *string
	State                   *string
	City                    string
	PostalCode              string
	LogoURL                 *string
	Notifications           NotificationSettings
	DailyRate               DailyRate
	OrganizationWorkingDays *int
	EPF                     EPFSettings
	ESI                     ESISettings
	ProfessionalTax         ProfessionalTaxSettings
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// DailyRate selects how a day's pay is derived from the monthly salary.
type DailyRate string

const (
	DailyRateCalendar DailyRate = "calendar"
	DailyRateWorking  DailyRate = "working"
	DailyRateFixed    DailyRate = "fixed"
)

func (d DailyRate) IsValid() bool {
	return d == DailyRateCalendar || d == DailyRateWorking || d == DailyRateFixed
}

type SlabType string

const (
	SlabTypeMonthly    SlabType = "monthly"
	SlabTypeHalfYearly SlabType = "half_yearly"
)

const (
	DefaultEPFEmployeeContribution = 12.0
	DefaultEPFEmployerContribution = 12.0
	DefaultESIEmployeeContribution = 0.75
	DefaultESIEmployerContribution = 3.25
)

// NotificationSettings is stored as JSONB
type NotificationSettings struct {
	EnableClockIn  bool `json:"enable_clock_in"`
	EnableClockOut bool `json:"enable_clock_out"`
	EnableIMEI     bool `json:"enable_imei"`
}

// EPFSettings is the provident fund registration, stored as JSONB.
// Contributions are percentages of wages.
type EPFSettings struct {
	Number               string   `json:"number,omitempty"`
	EmployeeContribution *float64 `json:"employee_contribution,omitempty"`
	EmployerContribution *float64 `json:"employer_contribution,omitempty"`
	IncludeInCTC         bool     `json:"include_in_ctc"`
	IncludeAdmin         bool     `json:"include_admin"`
	IncludeEdu           bool     `json:"include_edu"`
}

// ESISettings is the state insurance registration, stored as JSONB.
type ESISettings struct {
	Number               string   `json:"number,omitempty"`
	EmployeeContribution *float64 `json:"employee_contribution,omitempty"`
	EmployerContribution *float64 `json:"employer_contribution,omitempty"`
	IncludeInCTC         bool     `json:"include_in_ctc"`
}

type TaxSlab struct {
	StartRange float64  `json:"start_range"`
	EndRange   *float64 `json:"end_range,omitempty"`
	Amount     float64  `json:"amount"`
}

// ProfessionalTaxSettings is stored as JSONB
type ProfessionalTaxSettings struct {
	Number   string    `json:"number,omitempty"`
	SlabType SlabType  `json:"slab_type,omitempty"`
	Slabs    []TaxSlab `json:"slabs,omitempty"`
}

// WithDefaults fills omitted settings with the statutory defaults.
func (c Company) WithDefaults() Company {
	if c.DailyRate == "" {
		c.DailyRate = DailyRateCalendar
	}
	c.EPF.EmployeeContribution = orDefault(c.EPF.EmployeeContribution, DefaultEPFEmployeeContribution)
	c.EPF.EmployerContribution = orDefault(c.EPF.EmployerContribution, DefaultEPFEmployerContribution)
	c.ESI.EmployeeContribution = orDefault(c.ESI.EmployeeContribution, DefaultESIEmployeeContribution)
	c.ESI.EmployerContribution = orDefault(c.ESI.EmployerContribution, DefaultESIEmployerContribution)
	if c.ProfessionalTax.SlabType == "" {
		c.ProfessionalTax.SlabType = SlabTypeMonthly
	}
	return c
}

func orDefault(v *float64, def float64) *float64 {
	if v != nil {
		return v
	}
	return &def
}

// Value implements driver.Valuer for database storage
func (n NotificationSettings) Value() (driver.Value, error) { return json.Marshal(n) }

// Scan implements sql.Scanner for database retrieval
func (n *NotificationSettings) Scan(value interface{}) error { return scanJSON(value, n) }

func (e EPFSettings) Value() (driver.Value, error) { return json.Marshal(e) }
func (e *EPFSettings) Scan(value interface{}) error { return scanJSON(value, e) }

func (e ESISettings) Value() (driver.Value, error) { return json.Marshal(e) }
func (e *ESISettings) Scan(value interface{}) error { return scanJSON(value, e) }

func (p ProfessionalTaxSettings) Value() (driver.Value, error) { return json.Marshal(p) }
func (p *ProfessionalTaxSettings) Scan(value interface{}) error { return scanJSON(value, p) }

func scanJSON(value interface{}, dst interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("failed to scan %T: invalid type %T", dst, value)
	}
}
