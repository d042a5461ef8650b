package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

// IncrementUsedDays implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) IncrementUsedDays(ctx context.Context, userID, leaveTypeID string, year, days int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET used_days = used_days + $4, updated_at = NOW()
		WHERE user_id = $1 AND leave_type_id = $2 AND year = $3
	`

	tag, err := q.Exec(ctx, query, userID, leaveTypeID, year, days)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListByYear implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) ListByYear(ctx context.Context, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lb.id, lb.user_id, lb.leave_type_id, lb.year, lb.total_days, lb.used_days,
			   lb.created_at, lb.updated_at,
			   u.name AS employee_name, lt.name AS leave_type_name
		FROM leave_balances lb
		LEFT JOIN users u ON u.id = lb.user_id
		LEFT JOIN leave_types lt ON lt.id = lb.leave_type_id
		WHERE lb.year = $1
		ORDER BY lb.total_days DESC, lb.user_id
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave balances: %w", err)
	}
	defer rows.Close()

	balances := make([]leave.LeaveBalance, 0)
	for rows.Next() {
		var b leave.LeaveBalance
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.LeaveTypeID, &b.Year, &b.TotalDays, &b.UsedDays,
			&b.CreatedAt, &b.UpdatedAt,
			&b.EmployeeName, &b.LeaveTypeName,
		); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

// OpenYear implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) OpenYear(ctx context.Context, year int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (id, user_id, leave_type_id, year, total_days, used_days, created_at, updated_at)
		SELECT gen_random_uuid(), prev.user_id, prev.leave_type_id, $1, prev.total_days, 0, NOW(), NOW()
		FROM leave_balances prev
		WHERE prev.year = $1 - 1
		ON CONFLICT (user_id, leave_type_id, year) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, year)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
