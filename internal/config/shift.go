package config

import (
	"fmt"
	"os"
	"time"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/attendance"
	"gopkg.in/yaml.v3"
)

// ShiftPolicyFile is the YAML document that defines when each shift is expected.
//
//	timezone: Asia/Kolkata
//	shifts:
//	  morning: { start: "09:00", grace_minutes: 15 }
//	  night:   { start: "22:00", grace_minutes: 15, end: "06:00", overtime_after_minutes: 60 }
type ShiftPolicyFile struct {
	Timezone string                 `yaml:"timezone"`
	Shifts   map[string]ShiftConfig `yaml:"shifts"`
}

type ShiftConfig struct {
	Start                string `yaml:"start"`
	GraceMinutes         int    `yaml:"grace_minutes"`
	End                  string `yaml:"end"`
	EarlyOutGraceMinutes int    `yaml:"early_out_grace_minutes"`
	OvertimeAfterMinutes *int   `yaml:"overtime_after_minutes"`
}

// LoadPolicyTable builds the shift policy table. Without a policy file the built-in
// defaults are used in the configured timezone.
func (c *Config) LoadPolicyTable() (attendance.PolicyTable, error) {
	if c.Attendance.ShiftPolicyFile == "" {
		loc, err := time.LoadLocation(c.Attendance.Timezone)
		if err != nil {
			return attendance.PolicyTable{}, fmt.Errorf("invalid ATTENDANCE_TIMEZONE: %w", err)
		}
		defaults := attendance.DefaultPolicyTable()
		var policies []attendance.ShiftPolicy
		for _, s := range []attendance.Shift{attendance.ShiftMorning, attendance.ShiftEvening, attendance.ShiftNight} {
			if p, ok := defaults.Lookup(s); ok {
				policies = append(policies, p)
			}
		}
		return attendance.NewPolicyTable(loc, policies...)
	}

	data, err := os.ReadFile(c.Attendance.ShiftPolicyFile)
	if err != nil {
		return attendance.PolicyTable{}, fmt.Errorf("failed to read shift policy file: %w", err)
	}
	return ParseShiftPolicies(data, c.Attendance.Timezone)
}

// ParseShiftPolicies decodes a policy document. fallbackTimezone applies when the
// document does not name one.
func ParseShiftPolicies(data []byte, fallbackTimezone string) (attendance.PolicyTable, error) {
	var file ShiftPolicyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return attendance.PolicyTable{}, fmt.Errorf("failed to parse shift policy file: %w", err)
	}

	tz := file.Timezone
	if tz == "" {
		tz = fallbackTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return attendance.PolicyTable{}, fmt.Errorf("invalid shift policy timezone: %w", err)
	}

	if len(file.Shifts) == 0 {
		return attendance.PolicyTable{}, fmt.Errorf("shift policy file defines no shifts")
	}

	policies := make([]attendance.ShiftPolicy, 0, len(file.Shifts))
	for name, sc := range file.Shifts {
		policy, err := sc.toPolicy(attendance.Shift(name))
		if err != nil {
			return attendance.PolicyTable{}, err
		}
		policies = append(policies, policy)
	}

	return attendance.NewPolicyTable(loc, policies...)
}

func (sc ShiftConfig) toPolicy(shift attendance.Shift) (attendance.ShiftPolicy, error) {
	if !shift.IsKnown() {
		return attendance.ShiftPolicy{}, fmt.Errorf("unknown shift %q in shift policy file", shift)
	}

	start, err := attendance.ParseClock(sc.Start)
	if err != nil {
		return attendance.ShiftPolicy{}, fmt.Errorf("shift %s: %w", shift, err)
	}

	policy := attendance.ShiftPolicy{
		Shift:                shift,
		ExpectedStart:        start,
		GraceMinutes:         sc.GraceMinutes,
		EarlyOutGraceMinutes: sc.EarlyOutGraceMinutes,
		OvertimeAfterMinutes: sc.OvertimeAfterMinutes,
	}

	if sc.End != "" {
		end, err := attendance.ParseClock(sc.End)
		if err != nil {
			return attendance.ShiftPolicy{}, fmt.Errorf("shift %s: %w", shift, err)
		}
		policy.ExpectedEnd = &end
	}

	return policy, policy.Validate()
}
