package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance
// records. The (employee_id, work_date) pair is unique at the storage
// level; Create and Update surface ErrDuplicateAttendance when the
// constraint is violated.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)

	// ExistsForEmployeeAndDate reports whether an attendance row exists
	// for (employeeID, date), skipping excludeID when non-nil so an edit
	// does not collide with the row being edited.
	ExistsForEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, excludeID *string) (bool, error)

	Update(ctx context.Context, att Attendance) error
	Delete(ctx context.Context, id string) error

	// List returns rows matching the filter, ordered by work_date descending
	List(ctx context.Context, filter ListAttendanceFilter) ([]Attendance, error)

	// ListByEmployeeAndMonth returns one employee's rows for a calendar
	// month, ordered by work_date descending. The salary calculator
	// consumes this set.
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]Attendance, error)
}
