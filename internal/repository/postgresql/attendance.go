package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"a.date = $1"}
	args := []interface{}{filter.Date}

	if filter.Shift != nil {
		args = append(args, string(*filter.Shift))
		conditions = append(conditions, fmt.Sprintf("a.shift = $%d", len(args)))
	}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("a.user_id = $%d", len(args)))
	}

	query := `
		SELECT a.id, a.user_id, a.date, a.shift, a.clock_in, a.clock_out, a.created_at,
			   u.name AS employee_name
		FROM attendances a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY CASE a.shift WHEN 'morning' THEN 1 WHEN 'evening' THEN 2 WHEN 'night' THEN 3 ELSE 4 END,
			a.clock_in NULLS LAST, a.user_id
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Record, 0)
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Date, &rec.Shift, &rec.ClockIn, &rec.ClockOut, &rec.CreatedAt,
			&rec.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, nil
}
