package employee

import "context"

// EmployeeService defines business logic for employee operations. All
// methods are admin-only; the acting principal is read from the request
// context by the implementation.
type EmployeeService interface {
	// ListEmployees lists employees, filtered by a search term when given
	ListEmployees(ctx context.Context, search string) ([]EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee creates a new employee, optionally with a login identity
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee updates an employee and its identity in one unit
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee, its attendance rows and its identity
	DeleteEmployee(ctx context.Context, id string) error

	// Dashboard returns employee headcounts for the admin dashboard
	Dashboard(ctx context.Context) (DashboardResponse, error)
}
