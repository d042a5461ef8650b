package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Required appends a "<field> is required" error when value is blank.
func (v *ValidationErrors) Required(field, value string) {
	if IsEmpty(value) {
		*v = append(*v, ValidationError{Field: field, Message: field + " is required"})
	}
}

// MaxLength appends an error when value is longer than limit characters.
func (v *ValidationErrors) MaxLength(field, value string, limit int) {
	if len(value) > limit {
		*v = append(*v, ValidationError{Field: field, Message: field + " must not exceed " + strconv.Itoa(limit) + " characters"})
	}
}

// Err returns nil for an empty list so callers can `return errs.Err()`.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// UUID validation (any version)
func IsValidUUID(id string) bool {
	return uuid.Validate(id) == nil
}

// Master data codes: 1-20 chars, A-Z, a-z, 0-9, ., _, -
var codeRegex = regexp.MustCompile(`^[A-Za-z0-9._-]{1,20}$`)

func IsValidCode(code string) bool {
	return codeRegex.MatchString(code)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}
