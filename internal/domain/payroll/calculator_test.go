package payroll

import (
	"testing"
	"time"

	"github.com/payrollweb/payroll-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestTotalWorkedHours_EmptyMonth(t *testing.T) {
	total := TotalWorkedHours(nil, 2026, time.May)
	assert.Equal(t, float64(0), total)
}

func TestTotalWorkedHours_SumsOnlyRequestedMonth(t *testing.T) {
	records := []attendance.Attendance{
		{WorkDate: day(2026, time.April, 30), WorkHours: 8},
		{WorkDate: day(2026, time.May, 1), WorkHours: 8},
		{WorkDate: day(2026, time.May, 15), WorkHours: 7.5},
		{WorkDate: day(2026, time.May, 31), WorkHours: 4},
		{WorkDate: day(2026, time.June, 1), WorkHours: 8},
		// Same calendar month, different year.
		{WorkDate: day(2025, time.May, 10), WorkHours: 8},
	}

	total := TotalWorkedHours(records, 2026, time.May)
	assert.Equal(t, 19.5, total)
}

func TestCalculateSalary_ZeroHours(t *testing.T) {
	wage := decimal.NewFromInt(300000)
	pay := CalculateSalary(nil, 2026, time.May, wage)
	assert.True(t, pay.IsZero(), "expected zero pay, got %s", pay)
}

func TestCalculateSalary_HoursTimesRate(t *testing.T) {
	// 20 working days of 1 hour each at the default rate.
	var records []attendance.Attendance
	for d := 1; d <= 20; d++ {
		records = append(records, attendance.Attendance{
			WorkDate:  day(2026, time.May, d),
			WorkHours: 1,
		})
	}

	wage := decimal.NewFromInt(300000)
	pay := CalculateSalary(records, 2026, time.May, wage)
	assert.True(t, decimal.NewFromInt(6000000).Equal(pay), "expected 6000000, got %s", pay)
}

func TestCalculateSalary_FractionalHours(t *testing.T) {
	records := []attendance.Attendance{
		{WorkDate: day(2026, time.May, 1), WorkHours: 7.5},
		{WorkDate: day(2026, time.May, 2), WorkHours: 8},
	}

	wage := decimal.NewFromInt(20000)
	pay := CalculateSalary(records, 2026, time.May, wage)
	assert.True(t, decimal.NewFromInt(310000).Equal(pay), "expected 310000, got %s", pay)
}

func TestCalculateSalary_NoProrationByRecordOwner(t *testing.T) {
	// The calculator only looks at dates and hours; any filtering by
	// employment status happens before the records reach it.
	records := []attendance.Attendance{
		{EmployeeID: "emp-a", WorkDate: day(2026, time.May, 5), WorkHours: 3},
		{EmployeeID: "emp-b", WorkDate: day(2026, time.May, 6), WorkHours: 2},
	}

	wage := decimal.NewFromInt(1000)
	pay := CalculateSalary(records, 2026, time.May, wage)
	assert.True(t, decimal.NewFromInt(5000).Equal(pay), "expected 5000, got %s", pay)
}
