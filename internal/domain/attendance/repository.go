package attendance

import "context"

// AttendanceRepository is read-only: records are written by external time-capture devices.
type AttendanceRepository interface {
	// List returns the records of one day, optionally narrowed to a shift and a user,
	// ordered by shift then clock-in.
	List(ctx context.Context, filter RecordFilter) ([]Record, error)
}
