package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/payrollweb/payroll-backend-go/internal/domain/attendance"
	"github.com/payrollweb/payroll-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository. The unique
// constraint on (employee_id, work_date) backs the service-level
// duplicate pre-check, so two concurrent admissions for the same pair
// cannot both commit.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if att.ID == "" {
		att.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendances (id, employee_id, work_date, work_hours, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID,
		att.EmployeeID,
		att.WorkDate,
		att.WorkHours,
		att.Note,
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrDuplicateAttendance
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.work_date, a.work_hours, a.note,
			   a.created_at, a.updated_at,
			   e.full_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.EmployeeID, &att.WorkDate, &att.WorkHours, &att.Note,
		&att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return att, nil
}

// ExistsForEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ExistsForEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var query string
	args := []interface{}{employeeID, date}

	if excludeID != nil {
		query = `SELECT EXISTS(SELECT 1 FROM attendances WHERE employee_id = $1 AND work_date = $2 AND id != $3)`
		args = append(args, *excludeID)
	} else {
		query = `SELECT EXISTS(SELECT 1 FROM attendances WHERE employee_id = $1 AND work_date = $2)`
	}

	var exists bool
	err := q.QueryRow(ctx, query, args...).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance existence: %w", err)
	}

	return exists, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET employee_id = $1, work_date = $2, work_hours = $3, note = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, att.EmployeeID, att.WorkDate, att.WorkHours, att.Note, att.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.ErrDuplicateAttendance
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Month != nil && *filter.Month != "" {
		monthStart, err := time.Parse("2006-01", *filter.Month)
		if err != nil {
			return nil, fmt.Errorf("invalid month filter: %w", err)
		}
		baseWhere += fmt.Sprintf(" AND a.work_date >= $%d AND a.work_date < $%d", argIdx, argIdx+1)
		args = append(args, monthStart, monthStart.AddDate(0, 1, 0))
		argIdx += 2
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.work_date, a.work_hours, a.note,
			   a.created_at, a.updated_at,
			   e.full_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.work_date DESC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	return scanAttendances(rows)
}

// ListByEmployeeAndMonth implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	query := `
		SELECT a.id, a.employee_id, a.work_date, a.work_hours, a.note,
			   a.created_at, a.updated_at,
			   e.full_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND a.work_date >= $2
		  AND a.work_date < $3
		ORDER BY a.work_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by employee and month: %w", err)
	}
	defer rows.Close()

	return scanAttendances(rows)
}

func scanAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.WorkDate, &att.WorkHours, &att.Note,
			&att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}
	return attendances, nil
}
