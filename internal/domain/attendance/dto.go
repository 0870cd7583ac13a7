package attendance

import (
	"github.com/payrollweb/payroll-backend-go/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	WorkDate   string  `json:"work_date"`
	WorkHours  float64 `json:"work_hours"`
	Note       *string `json:"note,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "work_date", Message: "must be in YYYY-MM-DD format"})
	}
	if r.WorkHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "work_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	WorkDate   string  `json:"work_date"`
	WorkHours  float64 `json:"work_hours"`
	Note       *string `json:"note,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	create := CreateAttendanceRequest{
		EmployeeID: r.EmployeeID,
		WorkDate:   r.WorkDate,
		WorkHours:  r.WorkHours,
		Note:       r.Note,
	}
	return create.Validate()
}

// ListAttendanceFilter narrows the admin attendance listing. Month is
// "YYYY-MM"; both fields are optional.
type ListAttendanceFilter struct {
	EmployeeID *string
	Month      *string
}

func (f *ListAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != nil && *f.Month != "" {
		if _, _, ok := validator.IsValidMonth(*f.Month); !ok {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	WorkDate     string  `json:"work_date"`
	WorkHours    float64 `json:"work_hours"`
	Note         *string `json:"note,omitempty"`
	CreatedAt    string  `json:"created_at"`
}
