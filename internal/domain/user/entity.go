package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Full access: employee CRUD, attendance CRUD, salary reports
	RoleUser  Role = "user"  // Regular employee account
)

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasEmployee checks if the account is linked to an employee record
func (u *User) HasEmployee() bool {
	return u.EmployeeID != nil && *u.EmployeeID != ""
}
