package attendance

import (
	"time"
)

type Attendance struct {
	ID         string
	EmployeeID string
	WorkDate   time.Time
	WorkHours  float64
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}
