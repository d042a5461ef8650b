package postgresql

import (
	"context"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/master/section"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type sectionRepositoryImpl struct {
	db *database.DB
}

func NewSectionRepository(db *database.DB) section.SectionRepository {
	return &sectionRepositoryImpl{db: db}
}

const sectionSelect = `
	SELECT s.id, s.code, s.name, s.department_id, s.created_at, s.updated_at,
		   d.code AS department_code, d.name AS department_name
	FROM sections s
	LEFT JOIN departments d ON d.id = s.department_id`

func scanSection(row pgx.Row) (section.Section, error) {
	var s section.Section
	err := row.Scan(
		&s.ID, &s.Code, &s.Name, &s.DepartmentID, &s.CreatedAt, &s.UpdatedAt,
		&s.DepartmentCode, &s.DepartmentName,
	)
	return s, err
}

// List implements section.SectionRepository.
func (r *sectionRepositoryImpl) List(ctx context.Context) ([]section.Section, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, sectionSelect+` ORDER BY s.code ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sections := make([]section.Section, 0)
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

// GetByID implements section.SectionRepository.
func (r *sectionRepositoryImpl) GetByID(ctx context.Context, id string) (section.Section, error) {
	q := GetQuerier(ctx, r.db)
	return scanSection(q.QueryRow(ctx, sectionSelect+` WHERE s.id = $1`, id))
}

// Create implements section.SectionRepository.
func (r *sectionRepositoryImpl) Create(ctx context.Context, s section.Section) (section.Section, error) {
	q := GetQuerier(ctx, r.db)

	var id string
	err := q.QueryRow(ctx, `
		INSERT INTO sections (id, code, name, department_id, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, NOW(), NOW())
		RETURNING id
	`, s.Code, s.Name, s.DepartmentID).Scan(&id)
	if err != nil {
		return section.Section{}, err
	}
	return r.GetByID(ctx, id)
}

// Update implements section.SectionRepository.
func (r *sectionRepositoryImpl) Update(ctx context.Context, s section.Section) (section.Section, error) {
	q := GetQuerier(ctx, r.db)

	var id string
	err := q.QueryRow(ctx, `
		UPDATE sections
		SET code = $2, name = $3, department_id = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`, s.ID, s.Code, s.Name, s.DepartmentID).Scan(&id)
	if err != nil {
		return section.Section{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete implements section.SectionRepository.
func (r *sectionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
