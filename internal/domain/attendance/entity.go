package attendance

import (
	"time"
)

type Shift string

const (
	ShiftMorning Shift = "morning"
	ShiftEvening Shift = "evening"
	ShiftNight   Shift = "night"
)

// IsKnown reports whether s belongs to the closed set of shifts.
func (s Shift) IsKnown() bool {
	switch s {
	case ShiftMorning, ShiftEvening, ShiftNight:
		return true
	}
	return false
}

// Status is derived on every evaluation and never stored.
type Status string

const (
	StatusPresent  Status = "present"
	StatusAbsent   Status = "absent"
	StatusLate     Status = "late"
	StatusEarlyOut Status = "earlyOut"
	StatusOvertime Status = "overtime"
	StatusUnknown  Status = "unknown"
)

// IsFlagged reports whether the status puts an employee on the flagged list.
func (s Status) IsFlagged() bool {
	return s == StatusLate || s == StatusEarlyOut || s == StatusOvertime
}

// Label is the human readable form used in exports.
func (s Status) Label() string {
	switch s {
	case StatusPresent:
		return "Present"
	case StatusAbsent:
		return "Absent"
	case StatusLate:
		return "Late"
	case StatusEarlyOut:
		return "Early Out"
	case StatusOvertime:
		return "Overtime"
	default:
		return "Unknown"
	}
}

// Record is one attendance row as captured by a time-capture device.
// This service never writes it.
type Record struct {
	ID        string
	UserID    string
	Date      time.Time
	Shift     Shift
	ClockIn   *time.Time
	ClockOut  *time.Time
	CreatedAt time.Time

	// DTO
	EmployeeName *string
}
