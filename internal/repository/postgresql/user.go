package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/payrollweb/payroll-backend-go/internal/domain/user"
	"github.com/payrollweb/payroll-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, password_hash, role, employee_id, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.EmployeeID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, password_hash, role, employee_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.EmployeeID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return u, nil
}

// GetByEmployeeID implements user.UserRepository. Returns nil when the
// employee has no linked identity.
func (r *userRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, password_hash, role, employee_id, created_at, updated_at
		FROM users
		WHERE employee_id = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.EmployeeID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by employee id: %w", err)
	}

	return &u, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	if newUser.ID == "" {
		newUser.ID = uuid.NewString()
	}

	query := `
		INSERT INTO users (id, username, password_hash, role, employee_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newUser.ID,
		newUser.Username,
		newUser.PasswordHash,
		newUser.Role,
		newUser.EmployeeID,
	).Scan(&newUser.CreatedAt, &newUser.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrUsernameTaken
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// ExistsByUsername implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByUsername(ctx context.Context, username string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var query string
	args := []interface{}{username}

	if excludeID != nil {
		query = `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 AND id != $2)`
		args = append(args, *excludeID)
	} else {
		query = `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`
	}

	var exists bool
	err := q.QueryRow(ctx, query, args...).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}

	return exists, nil
}

// UpdateCredentials implements user.UserRepository. A nil passwordHash
// keeps the stored one.
func (r *userRepositoryImpl) UpdateCredentials(ctx context.Context, id string, username string, passwordHash *string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET username = $1,
			password_hash = COALESCE($2, password_hash),
			updated_at = NOW()
		WHERE id = $3
		RETURNING id, username, password_hash, role, employee_id, created_at, updated_at
	`

	var updated user.User
	err := q.QueryRow(ctx, query, username, passwordHash, id).Scan(
		&updated.ID, &updated.Username, &updated.PasswordHash, &updated.Role,
		&updated.EmployeeID, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return user.User{}, user.ErrUsernameTaken
		}
		return user.User{}, fmt.Errorf("failed to update user credentials: %w", err)
	}

	return updated, nil
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// DeleteByEmployeeID implements user.UserRepository. No-op when the
// employee has no linked identity.
func (r *userRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM users WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete user by employee id: %w", err)
	}

	return nil
}
