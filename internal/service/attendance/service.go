package attendance

import (
	"context"
	"fmt"

	"github.com/payrollweb/payroll-backend-go/internal/domain/attendance"
	"github.com/payrollweb/payroll-backend-go/internal/domain/employee"
	"github.com/payrollweb/payroll-backend-go/internal/pkg/database"
	"github.com/payrollweb/payroll-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: att.EmployeeName,
		WorkDate:     att.WorkDate.Format("2006-01-02"),
		WorkHours:    att.WorkHours,
		Note:         att.Note,
		CreatedAt:    att.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Record implements attendance.AttendanceService. The pre-check keeps
// the common duplicate path on a friendly error; the unique constraint
// in the repository catches the race two concurrent admissions would
// otherwise win together.
func (s *AttendanceServiceImpl) Record(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	workDate, _ := validator.IsValidDate(req.WorkDate)

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	exists, err := s.attendanceRepo.ExistsForEmployeeAndDate(ctx, req.EmployeeID, workDate, nil)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check duplicate attendance: %w", err)
	}
	if exists {
		return attendance.AttendanceResponse{}, attendance.ErrDuplicateAttendance
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		WorkDate:   workDate,
		WorkHours:  req.WorkHours,
		Note:       req.Note,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created.EmployeeName = &emp.FullName
	return mapAttendanceToResponse(created), nil
}

// Update implements attendance.AttendanceService. The uniqueness
// re-check excludes the row being edited, so keeping the same
// (employee, date) always succeeds while colliding with a different
// row fails.
func (s *AttendanceServiceImpl) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	workDate, _ := validator.IsValidDate(req.WorkDate)

	att, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	exists, err := s.attendanceRepo.ExistsForEmployeeAndDate(ctx, req.EmployeeID, workDate, &id)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check duplicate attendance: %w", err)
	}
	if exists {
		return attendance.AttendanceResponse{}, attendance.ErrDuplicateAttendance
	}

	att.EmployeeID = req.EmployeeID
	att.WorkDate = workDate
	att.WorkHours = req.WorkHours
	att.Note = req.Note

	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att.EmployeeName = &emp.FullName
	return mapAttendanceToResponse(att), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	attendances, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}
	return responses, nil
}
