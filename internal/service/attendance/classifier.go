package attendance

import (
	"time"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/attendance"
)

// Classifier derives exactly one status per attendance record from the shift policy table.
// It is pure: the result depends only on the record and the table.
type Classifier struct {
	table attendance.PolicyTable
}

func NewClassifier(table attendance.PolicyTable) *Classifier {
	return &Classifier{table: table}
}

func (c *Classifier) Classify(r attendance.Record) attendance.Status {
	switch {
	case r.ClockIn == nil && r.ClockOut == nil:
		return attendance.StatusAbsent
	case r.ClockIn == nil || r.ClockOut == nil:
		return attendance.StatusUnknown
	}

	policy, ok := c.table.Lookup(r.Shift)
	if !ok {
		return attendance.StatusPresent
	}

	loc := c.table.Location()
	deadline := policy.ExpectedStart.On(r.Date, loc).Add(minutes(policy.GraceMinutes))
	if r.ClockIn.In(loc).Truncate(time.Minute).After(deadline) {
		return attendance.StatusLate
	}

	if policy.ExpectedEnd == nil {
		return attendance.StatusPresent
	}

	end := expectedEnd(r.Date, policy, loc)
	clockOut := r.ClockOut.In(loc)

	if clockOut.Before(end.Add(-minutes(policy.EarlyOutGraceMinutes))) {
		return attendance.StatusEarlyOut
	}
	if policy.OvertimeAfterMinutes != nil && clockOut.After(end.Add(minutes(*policy.OvertimeAfterMinutes))) {
		return attendance.StatusOvertime
	}

	return attendance.StatusPresent
}

// expectedEnd anchors the shift end on the record date; a shift that ends at or
// before its start time ends on the following day.
func expectedEnd(date time.Time, policy attendance.ShiftPolicy, loc *time.Location) time.Time {
	end := policy.ExpectedEnd.On(date, loc)
	if *policy.ExpectedEnd <= policy.ExpectedStart {
		end = end.AddDate(0, 0, 1)
	}
	return end
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
