package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrDuplicateAttendance = errors.New("attendance already recorded for this employee on this date")
	ErrNegativeWorkHours   = errors.New("work hours must be non-negative")
)
