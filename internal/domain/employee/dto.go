package employee

import (
	"github.com/payrollweb/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CredentialsRequest optionally attaches a login identity to an
// employee. Password may be empty on edit, which keeps the current one.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

type CreateEmployeeRequest struct {
	FullName    string              `json:"full_name"`
	Phone       *string             `json:"phone,omitempty"`
	Email       *string             `json:"email,omitempty"`
	Position    *string             `json:"position,omitempty"`
	WageRate    decimal.Decimal     `json:"wage_rate"`
	StartDate   string              `json:"start_date"`
	Status      string              `json:"status,omitempty"`
	Credentials *CredentialsRequest `json:"credentials,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.WageRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "wage_rate", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be active or inactive"})
	}
	if r.Credentials != nil {
		if !validator.IsValidUsername(r.Credentials.Username) {
			errs = append(errs, validator.ValidationError{Field: "username", Message: "must be at least 4 characters"})
		}
		if !validator.IsValidPassword(r.Credentials.Password) {
			errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 6 characters"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FullName    string              `json:"full_name"`
	Phone       *string             `json:"phone,omitempty"`
	Email       *string             `json:"email,omitempty"`
	Position    *string             `json:"position,omitempty"`
	WageRate    decimal.Decimal     `json:"wage_rate"`
	StartDate   string              `json:"start_date"`
	Status      string              `json:"status"`
	Credentials *CredentialsRequest `json:"credentials,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.WageRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "wage_rate", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
	}
	if !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be active or inactive"})
	}
	if r.Credentials != nil {
		if !validator.IsValidUsername(r.Credentials.Username) {
			errs = append(errs, validator.ValidationError{Field: "username", Message: "must be at least 4 characters"})
		}
		// Empty password on edit keeps the current one.
		if r.Credentials.Password != "" && !validator.IsValidPassword(r.Credentials.Password) {
			errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 6 characters"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID        string          `json:"id"`
	FullName  string          `json:"full_name"`
	Phone     *string         `json:"phone,omitempty"`
	Email     *string         `json:"email,omitempty"`
	Position  *string         `json:"position,omitempty"`
	WageRate  decimal.Decimal `json:"wage_rate"`
	StartDate string          `json:"start_date"`
	Status    string          `json:"status"`
	Username  *string         `json:"username,omitempty"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

type DashboardResponse struct {
	TotalEmployees  int64 `json:"total_employees"`
	ActiveEmployees int64 `json:"active_employees"`
}
