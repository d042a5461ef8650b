package section

import "time"

// Section belongs to exactly one department.
type Section struct {
	ID           string
	Code         string
	Name         string
	DepartmentID string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	DepartmentCode *string
	DepartmentName *string
}
