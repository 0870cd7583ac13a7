package auth

import (
	"github.com/payrollweb/payroll-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RegisterRequest is the self-registration payload. Position and wage
// rate are not accepted here; fixed defaults are applied instead.
type RegisterRequest struct {
	FullName        string  `json:"full_name"`
	Phone           *string `json:"phone,omitempty"`
	Email           *string `json:"email,omitempty"`
	Username        string  `json:"username"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirm_password"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "must be at least 4 characters"})
	}
	if !validator.IsValidPassword(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 6 characters"})
	}
	if r.Password != r.ConfirmPassword {
		errs = append(errs, validator.ValidationError{Field: "confirm_password", Message: "does not match password"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"-"`
	RefreshTokenExpiresIn int64  `json:"-"`
}

type RegisterResponse struct {
	EmployeeID string `json:"employee_id"`
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
}
