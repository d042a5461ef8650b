package section

import "errors"

var (
	ErrSectionNotFound    = errors.New("section not found")
	ErrSectionCodeExists  = errors.New("section code already exists")
	ErrDepartmentNotFound = errors.New("department does not exist")
)
