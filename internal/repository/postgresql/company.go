package postgresql

import (
	"context"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/company"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

const companyColumns = `
	id, code, name, address1, address2, state, city, postal_code, logo_url,
	notifications, daily_rate, organization_working_days, epf, esi, professional_tax,
	created_at, updated_at`

func scanCompany(row pgx.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(
		&c.ID, &c.Code, &c.Name, &c.Address1, &c.Address2, &c.State, &c.City, &c.PostalCode, &c.LogoURL,
		&c.Notifications, &c.DailyRate, &c.OrganizationWorkingDays, &c.EPF, &c.ESI, &c.ProfessionalTax,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// List implements company.CompanyRepository.
func (r *companyRepositoryImpl) List(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]company.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// GetByID implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)
	return scanCompany(q.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
}

// Create implements company.CompanyRepository.
func (r *companyRepositoryImpl) Create(ctx context.Context, c company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO companies (
			code, name, address1, address2, state, city, postal_code, logo_url,
			notifications, daily_rate, organization_working_days, epf, esi, professional_tax
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + companyColumns

	return scanCompany(q.QueryRow(ctx, query,
		c.Code, c.Name, c.Address1, c.Address2, c.State, c.City, c.PostalCode, c.LogoURL,
		c.Notifications, c.DailyRate, c.OrganizationWorkingDays, c.EPF, c.ESI, c.ProfessionalTax,
	))
}

// Update implements company.CompanyRepository.
func (r *companyRepositoryImpl) Update(ctx context.Context, c company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies SET
			code = $2, name = $3, address1 = $4, address2 = $5, state = $6, city = $7,
			postal_code = $8, logo_url = $9, notifications = $10, daily_rate = $11,
			organization_working_days = $12, epf = $13, esi = $14, professional_tax = $15,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + companyColumns

	return scanCompany(q.QueryRow(ctx, query,
		c.ID, c.Code, c.Name, c.Address1, c.Address2, c.State, c.City, c.PostalCode, c.LogoURL,
		c.Notifications, c.DailyRate, c.OrganizationWorkingDays, c.EPF, c.ESI, c.ProfessionalTax,
	))
}

// Delete implements company.CompanyRepository.
func (r *companyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
