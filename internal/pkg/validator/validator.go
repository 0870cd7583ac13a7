package validator

import (
	"strings"
	"time"
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

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Month validation, "YYYY-MM" form used by attendance filters and the
// salary report.
func IsValidMonth(monthStr string) (int, time.Month, bool) {
	t, err := time.Parse("2006-01", monthStr)
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), t.Month(), true
}

// Username validation: the portal only constrains length.
func IsValidUsername(username string) bool {
	return len(username) >= 4
}

// Password validation
func IsValidPassword(password string) bool {
	return len(password) >= 6
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
