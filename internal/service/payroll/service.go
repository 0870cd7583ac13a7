package payroll

import (
	"context"

	"github.com/payrollweb/payroll-backend-go/internal/domain/attendance"
	"github.com/payrollweb/payroll-backend-go/internal/domain/employee"
	"github.com/payrollweb/payroll-backend-go/internal/domain/payroll"
	"github.com/payrollweb/payroll-backend-go/internal/pkg/database"
	"github.com/payrollweb/payroll-backend-go/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewPayrollService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// MonthlyReport implements payroll.PayrollService. Only active
// employees appear in the report; an inactive employee's attendance
// still counts when queried directly through the self-service view.
func (s *PayrollServiceImpl) MonthlyReport(ctx context.Context, req payroll.SalaryReportRequest) (payroll.SalaryReportResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryReportResponse{}, err
	}
	year, month, _ := validator.IsValidMonth(req.Month)

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return payroll.SalaryReportResponse{}, err
	}

	rows := make([]payroll.SalaryReportRow, 0, len(employees))
	for _, emp := range employees {
		records, err := s.attendanceRepo.ListByEmployeeAndMonth(ctx, emp.ID, year, month)
		if err != nil {
			return payroll.SalaryReportResponse{}, err
		}

		rows = append(rows, payroll.SalaryReportRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName,
			Position:     emp.Position,
			TotalHours:   payroll.TotalWorkedHours(records, year, month),
			WageRate:     emp.WageRate,
			TotalPay:     payroll.CalculateSalary(records, year, month, emp.WageRate),
		})
	}

	return payroll.SalaryReportResponse{
		Month: req.Month,
		Rows:  rows,
	}, nil
}
