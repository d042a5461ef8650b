package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/workforce-admin-go/internal/repository/postgresql"
	leaveService "github.com/cmlabs-hris/workforce-admin-go/internal/service/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertLeaveRequest(t *testing.T, db *database.DB, userID, leaveTypeID, start, end string) string {
	t.Helper()
	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO leave_requests (user_id, leave_type_id, start_date, end_date)
		VALUES ($1, $2, $3::date, $4::date)
		RETURNING id
	`, userID, leaveTypeID, start, end).Scan(&id)
	require.NoError(t, err)
	return id
}

func insertBalance(t *testing.T, db *database.DB, userID, leaveTypeID string, year, total, used int) {
	t.Helper()
	_, err := db.Exec(context.Background(), `
		INSERT INTO leave_balances (user_id, leave_type_id, year, total_days, used_days)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, leaveTypeID, year, total, used)
	require.NoError(t, err)
}

func usedDays(t *testing.T, db *database.DB, userID, leaveTypeID string, year int) int {
	t.Helper()
	var used int
	err := db.QueryRow(context.Background(), `
		SELECT used_days FROM leave_balances WHERE user_id = $1 AND leave_type_id = $2 AND year = $3
	`, userID, leaveTypeID, year).Scan(&used)
	require.NoError(t, err)
	return used
}

func newLeaveService(db *database.DB) leave.LeaveService {
	return leaveService.NewLeaveService(
		postgresql.NewTransactor(db),
		postgresql.NewLeaveRequestRepository(db),
		postgresql.NewLeaveBalanceRepository(db),
	)
}

func TestLeaveApproval_IncrementsOnce(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	approver := insertUser(t, db, "Approver", nil)
	employee := insertUser(t, db, "Jane Doe", nil)
	annual := insertLeaveType(t, db, "Annual")
	insertBalance(t, db, employee, annual, 2025, 12, 2)
	requestID := insertLeaveRequest(t, db, employee, annual, "2025-01-10", "2025-01-12")

	svc := newLeaveService(db)
	req := leave.UpdateStatusRequest{LeaveID: requestID, Status: leave.StatusApproved, DecidedBy: approver}

	// Act
	resp, err := svc.UpdateStatus(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, 3, resp.TotalDays)
	assert.Equal(t, 5, usedDays(t, db, employee, annual, 2025))

	// A repeated approval is rejected and leaves the balance alone
	_, err = svc.UpdateStatus(ctx, req)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
	assert.Equal(t, 5, usedDays(t, db, employee, annual, 2025))
}

func TestLeaveApproval_MissingBalanceRollsBack(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	approver := insertUser(t, db, "Approver", nil)
	employee := insertUser(t, db, "John Roe", nil)
	sick := insertLeaveType(t, db, "Sick")
	requestID := insertLeaveRequest(t, db, employee, sick, "2025-02-03", "2025-02-03")

	svc := newLeaveService(db)

	// Act
	_, err := svc.UpdateStatus(ctx, leave.UpdateStatusRequest{LeaveID: requestID, Status: leave.StatusApproved, DecidedBy: approver})

	// Assert
	assert.ErrorIs(t, err, leave.ErrLeaveBalanceNotFound)

	found, err := postgresql.NewLeaveRequestRepository(db).GetByID(ctx, requestID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, found.Status)
}

func TestLeaveRepository_Listings(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	var deptID string
	require.NoError(t, db.QueryRow(ctx, `INSERT INTO departments (code, name) VALUES ('ENG', 'Engineering') RETURNING id`).Scan(&deptID))

	engineer := insertUser(t, db, "Engineer", &deptID)
	other := insertUser(t, db, "Other", nil)
	annual := insertLeaveType(t, db, "Annual")
	insertLeaveType(t, db, "Unpaid")

	insertLeaveRequest(t, db, engineer, annual, "2024-03-28", "2024-04-02")
	insertLeaveRequest(t, db, other, annual, "2024-03-05", "2024-03-06")
	insertLeaveRequest(t, db, other, annual, "2024-05-01", "2024-05-01")

	repo := postgresql.NewLeaveRequestRepository(db)

	pending, err := repo.ListPending(ctx, &deptID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, engineer, pending[0].UserID)

	all, err := repo.ListPending(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	march := func(day int) time.Time { return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC) }
	overlapping, err := repo.ListOverlapping(ctx, march(1), march(31))
	require.NoError(t, err)
	require.Len(t, overlapping, 2)
	assert.True(t, !overlapping[0].StartDate.After(overlapping[1].StartDate))

	counts, err := repo.CountEmployeesByType(ctx, march(1), march(31))
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "Annual", counts[0].Name)
	assert.Equal(t, 2, counts[0].Count)
	assert.Equal(t, 0, counts[1].Count)
}

func TestLeaveBalanceRepository_OpenYear(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	employee := insertUser(t, db, "Jane Doe", nil)
	annual := insertLeaveType(t, db, "Annual")
	sick := insertLeaveType(t, db, "Sick")
	insertBalance(t, db, employee, annual, 2024, 12, 10)
	insertBalance(t, db, employee, sick, 2024, 6, 1)
	insertBalance(t, db, employee, sick, 2025, 8, 0)

	repo := postgresql.NewLeaveBalanceRepository(db)

	// Act
	opened, err := repo.OpenYear(ctx, 2025)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), opened)

	balances, err := repo.ListByYear(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, balances, 2)
	assert.Equal(t, 12, balances[0].TotalDays)
	assert.Equal(t, 0, balances[0].UsedDays)
	assert.Equal(t, 8, balances[1].TotalDays)

	again, err := repo.OpenYear(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(0), again)
}
