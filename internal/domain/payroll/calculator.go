package payroll

import (
	"time"

	"github.com/payrollweb/payroll-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// TotalWorkedHours sums work hours over the attendance rows whose date
// falls in the given calendar year and month. Rows outside the period
// are ignored; an empty or non-matching set yields 0.
func TotalWorkedHours(records []attendance.Attendance, year int, month time.Month) float64 {
	var total float64
	for _, rec := range records {
		if rec.WorkDate.Year() == year && rec.WorkDate.Month() == month {
			total += rec.WorkHours
		}
	}
	return total
}

// CalculateSalary returns TotalWorkedHours × wageRate for the period.
// Pay is a plain linear rate against accumulated hours: no per-day cap,
// no overtime multiplier, no proration by employment status or start
// date. Callers wanting an employment-window cutoff filter the records
// themselves.
func CalculateSalary(records []attendance.Attendance, year int, month time.Month, wageRate decimal.Decimal) decimal.Decimal {
	hours := TotalWorkedHours(records, year, month)
	return decimal.NewFromFloat(hours).Mul(wageRate)
}
