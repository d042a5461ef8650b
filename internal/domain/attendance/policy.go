package attendance

import (
	"fmt"
	"time"
)

// Clock is a time of day in minutes after midnight.
type Clock int

// ParseClock parses a 24h "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// On returns the instant at this time of day on the calendar day of date, in loc.
func (c Clock) On(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), int(c)/60, int(c)%60, 0, 0, loc)
}

// ShiftPolicy describes when a shift is expected to start and, optionally, end.
// Without ExpectedEnd the early-out and overtime rules are not evaluated.
type ShiftPolicy struct {
	Shift         Shift
	ExpectedStart Clock
	GraceMinutes  int

	ExpectedEnd          *Clock
	EarlyOutGraceMinutes int
	OvertimeAfterMinutes *int
}

func (p ShiftPolicy) Validate() error {
	if !p.Shift.IsKnown() {
		return fmt.Errorf("unknown shift %q", p.Shift)
	}
	if p.ExpectedStart < 0 || p.ExpectedStart >= 24*60 {
		return fmt.Errorf("shift %s: start out of range", p.Shift)
	}
	if p.GraceMinutes < 0 {
		return fmt.Errorf("shift %s: grace_minutes must not be negative", p.Shift)
	}
	if p.ExpectedEnd == nil {
		if p.OvertimeAfterMinutes != nil {
			return fmt.Errorf("shift %s: overtime_after_minutes requires an end time", p.Shift)
		}
		return nil
	}
	if *p.ExpectedEnd < 0 || *p.ExpectedEnd >= 24*60 {
		return fmt.Errorf("shift %s: end out of range", p.Shift)
	}
	if p.EarlyOutGraceMinutes < 0 {
		return fmt.Errorf("shift %s: early_out_grace_minutes must not be negative", p.Shift)
	}
	if p.OvertimeAfterMinutes != nil && *p.OvertimeAfterMinutes < 0 {
		return fmt.Errorf("shift %s: overtime_after_minutes must not be negative", p.Shift)
	}
	return nil
}

// PolicyTable maps each shift to its policy. Times of day are interpreted in Location.
type PolicyTable struct {
	location *time.Location
	policies map[Shift]ShiftPolicy
}

func NewPolicyTable(loc *time.Location, policies ...ShiftPolicy) (PolicyTable, error) {
	if loc == nil {
		loc = time.UTC
	}
	table := PolicyTable{
		location: loc,
		policies: make(map[Shift]ShiftPolicy, len(policies)),
	}
	for _, p := range policies {
		if err := p.Validate(); err != nil {
			return PolicyTable{}, err
		}
		if _, dup := table.policies[p.Shift]; dup {
			return PolicyTable{}, fmt.Errorf("duplicate policy for shift %q", p.Shift)
		}
		table.policies[p.Shift] = p
	}
	return table, nil
}

// DefaultPolicyTable is used when no shift policy file is configured.
func DefaultPolicyTable() PolicyTable {
	table, _ := NewPolicyTable(time.UTC,
		ShiftPolicy{Shift: ShiftMorning, ExpectedStart: 9 * 60, GraceMinutes: 15},
		ShiftPolicy{Shift: ShiftEvening, ExpectedStart: 17 * 60, GraceMinutes: 15},
		ShiftPolicy{Shift: ShiftNight, ExpectedStart: 22 * 60, GraceMinutes: 15},
	)
	return table
}

func (t PolicyTable) Lookup(s Shift) (ShiftPolicy, bool) {
	p, ok := t.policies[s]
	return p, ok
}

func (t PolicyTable) Location() *time.Location {
	if t.location == nil {
		return time.UTC
	}
	return t.location
}
