package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameTaken          = errors.New("username already taken")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrNoLinkedEmployee       = errors.New("account is not linked to an employee")
)
