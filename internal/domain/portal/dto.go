package portal

import (
	"github.com/payrollweb/payroll-backend-go/internal/domain/attendance"
	"github.com/payrollweb/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// DashboardResponse is the self-service landing view: the principal's
// employee profile plus hours accumulated in the current month. Linked
// is false for principals without an employee record (an admin account,
// typically), in which case the rest of the payload is empty.
type DashboardResponse struct {
	Linked     bool             `json:"linked"`
	EmployeeID string           `json:"employee_id,omitempty"`
	FullName   string           `json:"full_name,omitempty"`
	Position   *string          `json:"position,omitempty"`
	WageRate   *decimal.Decimal `json:"wage_rate,omitempty"`
	Month      string           `json:"month,omitempty"`
	TotalHours float64          `json:"total_hours"`
}

type MyAttendanceResponse struct {
	Month      string                          `json:"month"`
	TotalHours float64                         `json:"total_hours"`
	Records    []attendance.AttendanceResponse `json:"records"`
}

type MySalaryResponse = payroll.EmployeeSalaryResponse
