package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveRequestColumns = `
	lr.id, lr.user_id, lr.leave_type_id, lr.start_date, lr.end_date, lr.reason,
	lr.status, lr.rejection_reason, lr.decided_by, lr.decided_at, lr.created_at, lr.updated_at,
	u.name AS employee_name, lt.name AS leave_type_name`

const leaveRequestJoins = `
	FROM leave_requests lr
	LEFT JOIN users u ON u.id = lr.user_id
	LEFT JOIN leave_types lt ON lt.id = lr.leave_type_id`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.UserID, &lr.LeaveTypeID, &lr.StartDate, &lr.EndDate, &lr.Reason,
		&lr.Status, &lr.RejectionReason, &lr.DecidedBy, &lr.DecidedAt, &lr.CreatedAt, &lr.UpdatedAt,
		&lr.EmployeeName, &lr.LeaveTypeName,
	)
	return lr, err
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + ` WHERE lr.id = $1`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

// Decide implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Decide(ctx context.Context, id string, status leave.RequestStatus, reason *string, decidedBy *string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	var rejectionReason *string
	if status == leave.StatusRejected {
		rejectionReason = reason
	}

	query := `
		UPDATE leave_requests
		SET status = $2, rejection_reason = $3, decided_by = $4, decided_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, string(status), rejectionReason, decidedBy).Scan(&updatedID); err != nil {
		return leave.LeaveRequest{}, err
	}

	return r.GetByID(ctx, updatedID)
}

// ListPending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListPending(ctx context.Context, departmentID *string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + `
		WHERE lr.status = 'pending' AND ($1::uuid IS NULL OR u.department_id = $1::uuid)
		ORDER BY lr.start_date ASC, lr.created_at ASC
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending leave requests: %w", err)
	}
	return collectLeaveRequests(rows)
}

// ListOverlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListOverlapping(ctx context.Context, start, end time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + `
		WHERE lr.start_date <= $2 AND lr.end_date >= $1
		ORDER BY lr.start_date ASC, lr.created_at ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	return collectLeaveRequests(rows)
}

// CountEmployeesByType implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) CountEmployeesByType(ctx context.Context, start, end time.Time) ([]leave.LeaveTypeCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lt.id, lt.name, COUNT(DISTINCT lr.user_id) AS employees
		FROM leave_types lt
		LEFT JOIN leave_requests lr
			ON lr.leave_type_id = lt.id AND lr.start_date <= $2 AND lr.end_date >= $1
		GROUP BY lt.id, lt.name
		ORDER BY employees DESC, lt.name ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count leave requests by type: %w", err)
	}
	defer rows.Close()

	counts := make([]leave.LeaveTypeCount, 0)
	for rows.Next() {
		var c leave.LeaveTypeCount
		if err := rows.Scan(&c.LeaveTypeID, &c.Name, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
