package response

import (
	"errors"
	"net/http"

	"github.com/payrollweb/payroll-backend-go/internal/domain/attendance"
	"github.com/payrollweb/payroll-backend-go/internal/domain/auth"
	"github.com/payrollweb/payroll-backend-go/internal/domain/employee"
	"github.com/payrollweb/payroll-backend-go/internal/domain/user"
	"github.com/payrollweb/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUsernameTaken):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrNoLinkedEmployee):
		Forbidden(w, "Account is not linked to an employee")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidWageRate):
		BadRequest(w, "Wage rate must be non-negative", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateAttendance):
		Conflict(w, "Attendance already recorded for this employee on this date")
	case errors.Is(err, attendance.ErrNegativeWorkHours):
		BadRequest(w, "Work hours must be non-negative", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
