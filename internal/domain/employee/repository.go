package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error

	// List returns employees, narrowed to a name/phone/email substring
	// match when search is non-empty.
	List(ctx context.Context, search string) ([]Employee, error)

	GetActive(ctx context.Context) ([]Employee, error)
	CountByStatus(ctx context.Context) (total int64, active int64, err error)
}
