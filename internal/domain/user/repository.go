package user

import (
	"context"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*User, error)
	Create(ctx context.Context, newUser User) (User, error)

	// ExistsByUsername reports whether a user with the given username
	// exists, skipping excludeID when non-nil so an identity edit does
	// not collide with its own row.
	ExistsByUsername(ctx context.Context, username string, excludeID *string) (bool, error)

	UpdateCredentials(ctx context.Context, id string, username string, passwordHash *string) (User, error)
	Delete(ctx context.Context, id string) error
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}
