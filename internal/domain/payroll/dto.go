package payroll

import (
	"github.com/payrollweb/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// SalaryReportRow is one active employee's line in the monthly report.
type SalaryReportRow struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Position     *string         `json:"position,omitempty"`
	TotalHours   float64         `json:"total_hours"`
	WageRate     decimal.Decimal `json:"wage_rate"`
	TotalPay     decimal.Decimal `json:"total_pay"`
}

type SalaryReportResponse struct {
	Month string            `json:"month"`
	Rows  []SalaryReportRow `json:"rows"`
}

// EmployeeSalaryResponse is the self-service view of one employee's pay
// for a month.
type EmployeeSalaryResponse struct {
	EmployeeID string          `json:"employee_id"`
	Month      string          `json:"month"`
	TotalHours float64         `json:"total_hours"`
	WageRate   decimal.Decimal `json:"wage_rate"`
	TotalPay   decimal.Decimal `json:"total_pay"`
}

type SalaryReportRequest struct {
	Month string `json:"month"`
}

func (r *SalaryReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
