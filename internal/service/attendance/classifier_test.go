package attendance

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportDay = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

func at(day time.Time, hour, minute, second int) *time.Time {
	t := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, second, 0, day.Location())
	return &t
}

func clock(s string) *attendance.Clock {
	c, err := attendance.ParseClock(s)
	if err != nil {
		panic(err)
	}
	return &c
}

func intPtr(n int) *int { return &n }

func record(shift attendance.Shift, in, out *time.Time) attendance.Record {
	return attendance.Record{
		ID:       "rec",
		UserID:   "3f2a1b7c-0000-4000-8000-000000000001",
		Date:     reportDay,
		Shift:    shift,
		ClockIn:  in,
		ClockOut: out,
	}
}

func policyTableWithEnds(t *testing.T, loc *time.Location) attendance.PolicyTable {
	t.Helper()
	table, err := attendance.NewPolicyTable(loc,
		attendance.ShiftPolicy{
			Shift: attendance.ShiftMorning, ExpectedStart: 9 * 60, GraceMinutes: 15,
			ExpectedEnd: clock("17:00"), EarlyOutGraceMinutes: 10, OvertimeAfterMinutes: intPtr(60),
		},
		attendance.ShiftPolicy{
			Shift: attendance.ShiftNight, ExpectedStart: 22 * 60, GraceMinutes: 15,
			ExpectedEnd: clock("06:00"), EarlyOutGraceMinutes: 10,
		},
	)
	require.NoError(t, err)
	return table
}

func TestClassifier_Classify_DefaultPolicies(t *testing.T) {
	c := NewClassifier(attendance.DefaultPolicyTable())
	nextDay := reportDay.AddDate(0, 0, 1)

	tests := []struct {
		name   string
		record attendance.Record
		want   attendance.Status
	}{
		{"no clocks is absent", record(attendance.ShiftMorning, nil, nil), attendance.StatusAbsent},
		{"clock-in only is unknown", record(attendance.ShiftMorning, at(reportDay, 9, 0, 0), nil), attendance.StatusUnknown},
		{"clock-out only is unknown", record(attendance.ShiftMorning, nil, at(reportDay, 17, 0, 0)), attendance.StatusUnknown},
		{"on time", record(attendance.ShiftMorning, at(reportDay, 8, 55, 0), at(reportDay, 17, 0, 0)), attendance.StatusPresent},
		{"at end of grace", record(attendance.ShiftMorning, at(reportDay, 9, 15, 0), at(reportDay, 17, 0, 0)), attendance.StatusPresent},
		{"seconds are ignored", record(attendance.ShiftMorning, at(reportDay, 9, 15, 59), at(reportDay, 17, 0, 0)), attendance.StatusPresent},
		{"one minute past grace", record(attendance.ShiftMorning, at(reportDay, 9, 16, 0), at(reportDay, 17, 0, 0)), attendance.StatusLate},
		{"evening late", record(attendance.ShiftEvening, at(reportDay, 17, 30, 0), at(reportDay, 23, 0, 0)), attendance.StatusLate},
		{"night on time", record(attendance.ShiftNight, at(reportDay, 22, 10, 0), at(nextDay, 6, 0, 0)), attendance.StatusPresent},
		{"night late", record(attendance.ShiftNight, at(reportDay, 22, 16, 0), at(nextDay, 6, 0, 0)), attendance.StatusLate},
		{"night clock-in after midnight is late", record(attendance.ShiftNight, at(nextDay, 1, 30, 0), at(nextDay, 6, 0, 0)), attendance.StatusLate},
		{"night clock-in just before midnight is late", record(attendance.ShiftNight, at(reportDay, 23, 59, 0), at(nextDay, 6, 0, 0)), attendance.StatusLate},
		{"night early clock-in is on time", record(attendance.ShiftNight, at(reportDay, 21, 45, 0), at(nextDay, 6, 0, 0)), attendance.StatusPresent},
		{"no end configured never flags early out", record(attendance.ShiftMorning, at(reportDay, 9, 0, 0), at(reportDay, 10, 0, 0)), attendance.StatusPresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.record))
		})
	}
}

func TestClassifier_Classify_WithExpectedEnd(t *testing.T) {
	c := NewClassifier(policyTableWithEnds(t, time.UTC))
	nextDay := reportDay.AddDate(0, 0, 1)

	tests := []struct {
		name   string
		record attendance.Record
		want   attendance.Status
	}{
		{"left early", record(attendance.ShiftMorning, at(reportDay, 9, 0, 0), at(reportDay, 16, 45, 0)), attendance.StatusEarlyOut},
		{"left within early-out grace", record(attendance.ShiftMorning, at(reportDay, 9, 0, 0), at(reportDay, 16, 50, 0)), attendance.StatusPresent},
		{"left within overtime threshold", record(attendance.ShiftMorning, at(reportDay, 9, 0, 0), at(reportDay, 18, 0, 0)), attendance.StatusPresent},
		{"stayed past overtime threshold", record(attendance.ShiftMorning, at(reportDay, 9, 0, 0), at(reportDay, 18, 1, 0)), attendance.StatusOvertime},
		{"late wins over early out", record(attendance.ShiftMorning, at(reportDay, 10, 0, 0), at(reportDay, 12, 0, 0)), attendance.StatusLate},
		{"night shift ends next day", record(attendance.ShiftNight, at(reportDay, 22, 0, 0), at(nextDay, 5, 55, 0)), attendance.StatusPresent},
		{"night shift early out", record(attendance.ShiftNight, at(reportDay, 22, 0, 0), at(nextDay, 5, 30, 0)), attendance.StatusEarlyOut},
		{"night shift without overtime rule", record(attendance.ShiftNight, at(reportDay, 22, 0, 0), at(nextDay, 9, 0, 0)), attendance.StatusPresent},
		{"shift without policy is present", record(attendance.ShiftEvening, at(reportDay, 23, 0, 0), at(reportDay, 23, 30, 0)), attendance.StatusPresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.record))
		})
	}
}

func TestClassifier_Classify_UsesPolicyLocation(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)
	table, err := attendance.NewPolicyTable(wib,
		attendance.ShiftPolicy{Shift: attendance.ShiftMorning, ExpectedStart: 9 * 60, GraceMinutes: 15},
	)
	require.NoError(t, err)
	c := NewClassifier(table)

	// 02:10 UTC is 09:10 WIB
	onTime := record(attendance.ShiftMorning, at(reportDay, 2, 10, 0), at(reportDay, 10, 0, 0))
	late := record(attendance.ShiftMorning, at(reportDay, 2, 20, 0), at(reportDay, 10, 0, 0))

	assert.Equal(t, attendance.StatusPresent, c.Classify(onTime))
	assert.Equal(t, attendance.StatusLate, c.Classify(late))
}

func TestClassifier_Classify_IsDeterministic(t *testing.T) {
	c := NewClassifier(policyTableWithEnds(t, time.UTC))
	r := record(attendance.ShiftMorning, at(reportDay, 9, 20, 0), at(reportDay, 16, 0, 0))

	first := c.Classify(r)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify(r))
	}
}
