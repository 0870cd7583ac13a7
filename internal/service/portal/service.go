package portal

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/payrollweb/payroll-backend-go/internal/domain/attendance"
	"github.com/payrollweb/payroll-backend-go/internal/domain/employee"
	"github.com/payrollweb/payroll-backend-go/internal/domain/payroll"
	"github.com/payrollweb/payroll-backend-go/internal/domain/portal"
	"github.com/payrollweb/payroll-backend-go/internal/domain/user"
	"github.com/payrollweb/payroll-backend-go/internal/pkg/validator"
)

type PortalServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewPortalService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) portal.PortalService {
	return &PortalServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Helper to get the principal's employee link from JWT context. An
// empty employee_id claim means the account is not linked (an admin
// identity, typically).
func getEmployeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, _ := claims["employee_id"].(string)
	return employeeID, nil
}

func currentMonth() string {
	return time.Now().Format("2006-01")
}

// Dashboard implements portal.PortalService. Unlinked principals get a
// placeholder payload rather than an error.
func (s *PortalServiceImpl) Dashboard(ctx context.Context) (portal.DashboardResponse, error) {
	employeeID, err := getEmployeeIDFromContext(ctx)
	if err != nil {
		return portal.DashboardResponse{}, err
	}
	if employeeID == "" {
		return portal.DashboardResponse{Linked: false}, nil
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return portal.DashboardResponse{}, err
	}

	month := currentMonth()
	year, mon, _ := validator.IsValidMonth(month)
	records, err := s.attendanceRepo.ListByEmployeeAndMonth(ctx, employeeID, year, mon)
	if err != nil {
		return portal.DashboardResponse{}, err
	}

	return portal.DashboardResponse{
		Linked:     true,
		EmployeeID: emp.ID,
		FullName:   emp.FullName,
		Position:   emp.Position,
		WageRate:   &emp.WageRate,
		Month:      month,
		TotalHours: payroll.TotalWorkedHours(records, year, mon),
	}, nil
}

// MyAttendance implements portal.PortalService.
func (s *PortalServiceImpl) MyAttendance(ctx context.Context, month string) (portal.MyAttendanceResponse, error) {
	employeeID, err := getEmployeeIDFromContext(ctx)
	if err != nil {
		return portal.MyAttendanceResponse{}, err
	}
	if employeeID == "" {
		return portal.MyAttendanceResponse{}, user.ErrNoLinkedEmployee
	}

	if month == "" {
		month = currentMonth()
	}
	year, mon, ok := validator.IsValidMonth(month)
	if !ok {
		return portal.MyAttendanceResponse{}, validator.ValidationErrors{
			{Field: "month", Message: "must be in YYYY-MM format"},
		}
	}

	records, err := s.attendanceRepo.ListByEmployeeAndMonth(ctx, employeeID, year, mon)
	if err != nil {
		return portal.MyAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, attendance.AttendanceResponse{
			ID:           att.ID,
			EmployeeID:   att.EmployeeID,
			EmployeeName: att.EmployeeName,
			WorkDate:     att.WorkDate.Format("2006-01-02"),
			WorkHours:    att.WorkHours,
			Note:         att.Note,
			CreatedAt:    att.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return portal.MyAttendanceResponse{
		Month:      month,
		TotalHours: payroll.TotalWorkedHours(records, year, mon),
		Records:    responses,
	}, nil
}

// MySalary implements portal.PortalService.
func (s *PortalServiceImpl) MySalary(ctx context.Context, month string) (portal.MySalaryResponse, error) {
	employeeID, err := getEmployeeIDFromContext(ctx)
	if err != nil {
		return portal.MySalaryResponse{}, err
	}
	if employeeID == "" {
		return portal.MySalaryResponse{}, user.ErrNoLinkedEmployee
	}

	if month == "" {
		month = currentMonth()
	}
	year, mon, ok := validator.IsValidMonth(month)
	if !ok {
		return portal.MySalaryResponse{}, validator.ValidationErrors{
			{Field: "month", Message: "must be in YYYY-MM format"},
		}
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return portal.MySalaryResponse{}, err
	}

	records, err := s.attendanceRepo.ListByEmployeeAndMonth(ctx, employeeID, year, mon)
	if err != nil {
		return portal.MySalaryResponse{}, err
	}

	return portal.MySalaryResponse{
		EmployeeID: emp.ID,
		Month:      month,
		TotalHours: payroll.TotalWorkedHours(records, year, mon),
		WageRate:   emp.WageRate,
		TotalPay:   payroll.CalculateSalary(records, year, mon, emp.WageRate),
	}, nil
}
