package postgresql

import (
	"context"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/hr"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type caseRepositoryImpl struct {
	db *database.DB
}

func NewCaseRepository(db *database.DB) hr.CaseRepository {
	return &caseRepositoryImpl{db: db}
}

const caseColumns = `id, user_id, kind, title, description, date, status, created_at`

func scanCase(row pgx.Row) (hr.Case, error) {
	var c hr.Case
	err := row.Scan(&c.ID, &c.UserID, &c.Kind, &c.Title, &c.Description, &c.Date, &c.Status, &c.CreatedAt)
	return c, err
}

// ListByUser implements hr.CaseRepository.
func (r *caseRepositoryImpl) ListByUser(ctx context.Context, userID string, kind hr.Kind) ([]hr.Case, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+caseColumns+`
		FROM hr_cases
		WHERE user_id = $1 AND kind = $2
		ORDER BY date DESC, created_at DESC
	`, userID, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cases := make([]hr.Case, 0)
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, rows.Err()
}

// Create implements hr.CaseRepository.
func (r *caseRepositoryImpl) Create(ctx context.Context, c hr.Case) (hr.Case, error) {
	q := GetQuerier(ctx, r.db)

	return scanCase(q.QueryRow(ctx, `
		INSERT INTO hr_cases (user_id, kind, title, description, date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+caseColumns,
		c.UserID, c.Kind, c.Title, c.Description, c.Date, c.Status,
	))
}
