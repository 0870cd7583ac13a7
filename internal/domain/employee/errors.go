package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidWageRate  = errors.New("wage rate must be non-negative")
	ErrInvalidStatus    = errors.New("status must be active or inactive")
)
