package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

const migrationFile = "../../../../migrations/001_init.sql"

var (
	testDB     *database.DB
	testDBErr  error
	testDBOnce sync.Once
)

// tablesInDeleteOrder lists every table so a truncate leaves no rows behind.
var tablesInDeleteOrder = []string{
	"hr_cases",
	"leave_balances",
	"leave_requests",
	"leave_types",
	"attendances",
	"users",
	"sections",
	"departments",
	"designations",
	"categories",
	"extra_classifications",
	"companies",
}

// setupTestDB connects to TEST_DATABASE_URL, applies the schema and empties every table.
// Tests are skipped when no database is configured.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping repository integration test")
	}

	testDBOnce.Do(func() {
		ctx := context.Background()
		testDB, testDBErr = database.NewPostgreSQLDB(ctx, dsn)
		if testDBErr != nil {
			return
		}
		schema, err := os.ReadFile(migrationFile)
		if err != nil {
			testDBErr = fmt.Errorf("read migration: %w", err)
			return
		}
		if _, err := testDB.Exec(ctx, string(schema)); err != nil {
			testDBErr = fmt.Errorf("apply migration: %w", err)
		}
	})
	require.NoError(t, testDBErr)

	truncateAll(t, testDB)
	return testDB
}

func truncateAll(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	tx, err := db.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	for _, table := range tablesInDeleteOrder {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "truncate %s", table)
	}
	require.NoError(t, tx.Commit(ctx))
}

func insertUser(t *testing.T, db *database.DB, name string, departmentID *string) string {
	t.Helper()
	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO users (id, email, name, department_id)
		VALUES (gen_random_uuid(), gen_random_uuid()::text || '@example.com', $1, $2)
		RETURNING id
	`, name, departmentID).Scan(&id)
	require.NoError(t, err)
	return id
}

func insertLeaveType(t *testing.T, db *database.DB, name string) string {
	t.Helper()
	var id string
	err := db.QueryRow(context.Background(), `INSERT INTO leave_types (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	require.NoError(t, err)
	return id
}
