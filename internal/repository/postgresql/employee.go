package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/payrollweb/payroll-backend-go/internal/domain/employee"
	"github.com/payrollweb/payroll-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.full_name, e.phone, e.email, e.position, e.wage_rate,
			   e.start_date, e.status, e.created_at, e.updated_at,
			   u.id AS user_id, u.username
		FROM employees e
		LEFT JOIN users u ON u.employee_id = e.id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FullName, &emp.Phone, &emp.Email, &emp.Position, &emp.WageRate,
		&emp.StartDate, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.UserID, &emp.Username,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if newEmployee.ID == "" {
		newEmployee.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employees (id, full_name, phone, email, position, wage_rate, start_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.FullName,
		newEmployee.Phone,
		newEmployee.Email,
		newEmployee.Position,
		newEmployee.WageRate,
		newEmployee.StartDate,
		newEmployee.Status,
	).Scan(&newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $1, phone = $2, email = $3, position = $4,
			wage_rate = $5, start_date = $6, status = $7, updated_at = NOW()
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		emp.FullName, emp.Phone, emp.Email, emp.Position,
		emp.WageRate, emp.StartDate, emp.Status, emp.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository. Attendance rows and
// the linked user go with it through the FK cascades.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, search string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.full_name, e.phone, e.email, e.position, e.wage_rate,
			   e.start_date, e.status, e.created_at, e.updated_at,
			   u.id AS user_id, u.username
		FROM employees e
		LEFT JOIN users u ON u.employee_id = e.id
	`
	args := []interface{}{}

	if search != "" {
		query += `
		WHERE e.full_name ILIKE $1 OR e.phone ILIKE $1 OR e.email ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	query += `
		ORDER BY e.created_at`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// GetActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.full_name, e.phone, e.email, e.position, e.wage_rate,
			   e.start_date, e.status, e.created_at, e.updated_at,
			   u.id AS user_id, u.username
		FROM employees e
		LEFT JOIN users u ON u.employee_id = e.id
		WHERE e.status = 'active'
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// CountByStatus implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountByStatus(ctx context.Context) (int64, int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'active')
		FROM employees
	`

	var total, active int64
	if err := q.QueryRow(ctx, query).Scan(&total, &active); err != nil {
		return 0, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return total, active, nil
}

func scanEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.Phone, &emp.Email, &emp.Position, &emp.WageRate,
			&emp.StartDate, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
			&emp.UserID, &emp.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}
	return employees, nil
}
