package attendance

import "github.com/cmlabs-hris/workforce-admin-go/internal/domain/attendance"

// Aggregate counts statuses and collects flagged employees in input order.
func Aggregate(items []attendance.EmployeeAttendance) (attendance.Summary, []attendance.EmployeeAttendance) {
	summary := attendance.Summary{Total: len(items)}
	flagged := make([]attendance.EmployeeAttendance, 0)

	for _, item := range items {
		switch item.Status {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusAbsent:
			summary.Absent++
		case attendance.StatusLate:
			summary.Late++
		case attendance.StatusEarlyOut:
			summary.EarlyOut++
		case attendance.StatusOvertime:
			summary.Overtime++
		default:
			summary.Unknown++
		}

		if item.Status.IsFlagged() {
			flagged = append(flagged, item)
		}
	}

	return summary, flagged
}
