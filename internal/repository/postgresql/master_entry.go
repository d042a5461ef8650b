package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/master/entry"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type entryRepositoryImpl struct {
	db *database.DB
}

func NewEntryRepository(db *database.DB) entry.EntryRepository {
	return &entryRepositoryImpl{db: db}
}

// table resolves the kind's table name. Only names from the fixed kind map are ever
// interpolated into SQL.
func entryTable(kind entry.Kind) (string, error) {
	if !kind.IsValid() {
		return "", entry.ErrUnknownKind
	}
	return kind.Table(), nil
}

func scanEntry(kind entry.Kind, row pgx.Row) (entry.Entry, error) {
	e := entry.Entry{Kind: kind}
	err := row.Scan(&e.ID, &e.Code, &e.Name, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// List implements entry.EntryRepository.
func (r *entryRepositoryImpl) List(ctx context.Context, kind entry.Kind) ([]entry.Entry, error) {
	t, err := entryTable(kind)
	if err != nil {
		return nil, err
	}
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, fmt.Sprintf(`
		SELECT id, code, name, created_at, updated_at
		FROM %s
		ORDER BY code ASC
	`, t))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]entry.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(kind, rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetByID implements entry.EntryRepository.
func (r *entryRepositoryImpl) GetByID(ctx context.Context, kind entry.Kind, id string) (entry.Entry, error) {
	t, err := entryTable(kind)
	if err != nil {
		return entry.Entry{}, err
	}
	q := GetQuerier(ctx, r.db)

	return scanEntry(kind, q.QueryRow(ctx, fmt.Sprintf(`
		SELECT id, code, name, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, t), id))
}

// Create implements entry.EntryRepository.
func (r *entryRepositoryImpl) Create(ctx context.Context, kind entry.Kind, e entry.Entry) (entry.Entry, error) {
	t, err := entryTable(kind)
	if err != nil {
		return entry.Entry{}, err
	}
	q := GetQuerier(ctx, r.db)

	return scanEntry(kind, q.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, code, name, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, NOW(), NOW())
		RETURNING id, code, name, created_at, updated_at
	`, t), e.Code, e.Name))
}

// Update implements entry.EntryRepository.
func (r *entryRepositoryImpl) Update(ctx context.Context, kind entry.Kind, e entry.Entry) (entry.Entry, error) {
	t, err := entryTable(kind)
	if err != nil {
		return entry.Entry{}, err
	}
	q := GetQuerier(ctx, r.db)

	return scanEntry(kind, q.QueryRow(ctx, fmt.Sprintf(`
		UPDATE %s
		SET code = $2, name = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, code, name, created_at, updated_at
	`, t), e.ID, e.Code, e.Name))
}

// Delete implements entry.EntryRepository.
func (r *entryRepositoryImpl) Delete(ctx context.Context, kind entry.Kind, id string) error {
	t, err := entryTable(kind)
	if err != nil {
		return err
	}
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t), id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
