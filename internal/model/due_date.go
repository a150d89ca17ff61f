package model

import (
	"errors"
	"regexp"
	"time"
)

// DateLayout is the calendar date format used for due dates.
const DateLayout = "2006-01-02"

var (
	ErrDueDateFormat = errors.New("invalid format")
	ErrDueDatePast   = errors.New("past date")
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsCalendarDate reports whether s is a real day written as YYYY-MM-DD.
func IsCalendarDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidateDueDate checks dueDate against reference (both YYYY-MM-DD).
// Format is checked first, then that dueDate is not before reference.
func ValidateDueDate(dueDate, reference string) error {
	if !IsCalendarDate(dueDate) {
		return ErrDueDateFormat
	}
	// Fixed-width dates order correctly as strings.
	if dueDate < reference {
		return ErrDueDatePast
	}
	return nil
}
