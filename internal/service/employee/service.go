package employee

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/payrollweb/payroll-backend-go/internal/domain/employee"
	"github.com/payrollweb/payroll-backend-go/internal/domain/user"
	"github.com/payrollweb/payroll-backend-go/internal/fixtures"
	"github.com/payrollweb/payroll-backend-go/internal/pkg/database"
	"github.com/payrollweb/payroll-backend-go/internal/pkg/validator"
	"github.com/payrollweb/payroll-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	userRepo     user.UserRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
	}
}

// Helper function to map Employee to EmployeeResponse
func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:        emp.ID,
		FullName:  emp.FullName,
		Phone:     emp.Phone,
		Email:     emp.Email,
		Position:  emp.Position,
		WageRate:  emp.WageRate,
		StartDate: emp.StartDate.Format("2006-01-02"),
		Status:    string(emp.Status),
		Username:  emp.Username,
		CreatedAt: emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, search string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, search)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService. The employee row
// and its optional login identity commit as one unit; an identity
// failure leaves no orphaned employee behind.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	status := employee.Status(req.Status)
	if req.Status == "" {
		status = employee.StatusActive
	}

	if req.Credentials != nil {
		taken, err := s.userRepo.ExistsByUsername(ctx, req.Credentials.Username, nil)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return employee.EmployeeResponse{}, user.ErrUsernameTaken
		}
	}

	var created employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			FullName:  req.FullName,
			Phone:     req.Phone,
			Email:     req.Email,
			Position:  req.Position,
			WageRate:  req.WageRate,
			StartDate: startDate,
			Status:    status,
		})
		if err != nil {
			return err
		}

		if req.Credentials != nil {
			passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Credentials.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			newUser, err := s.userRepo.Create(txCtx, user.User{
				Username:     req.Credentials.Username,
				PasswordHash: string(passwordHash),
				Role:         user.RoleUser,
				EmployeeID:   &created.ID,
			})
			if err != nil {
				return err
			}
			created.UserID = &newUser.ID
			created.Username = &newUser.Username
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService. Credentials may
// attach an identity to a previously identity-less employee or rename
// and re-password the linked one; the uniqueness check excludes the
// identity's own row.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)

	if req.Credentials != nil {
		taken, err := s.userRepo.ExistsByUsername(ctx, req.Credentials.Username, emp.UserID)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return employee.EmployeeResponse{}, user.ErrUsernameTaken
		}
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		emp.FullName = req.FullName
		emp.Phone = req.Phone
		emp.Email = req.Email
		emp.Position = req.Position
		emp.WageRate = req.WageRate
		emp.StartDate = startDate
		emp.Status = employee.Status(req.Status)

		if err := s.employeeRepo.Update(txCtx, emp); err != nil {
			return err
		}

		if req.Credentials == nil {
			return nil
		}

		if emp.UserID != nil {
			var passwordHash *string
			if req.Credentials.Password != "" {
				hash, err := bcrypt.GenerateFromPassword([]byte(req.Credentials.Password), bcrypt.DefaultCost)
				if err != nil {
					return fmt.Errorf("failed to hash password: %w", err)
				}
				hashed := string(hash)
				passwordHash = &hashed
			}
			updated, err := s.userRepo.UpdateCredentials(txCtx, *emp.UserID, req.Credentials.Username, passwordHash)
			if err != nil {
				return err
			}
			emp.Username = &updated.Username
			return nil
		}

		password := req.Credentials.Password
		if password == "" {
			password = fixtures.DefaultPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		newUser, err := s.userRepo.Create(txCtx, user.User{
			Username:     req.Credentials.Username,
			PasswordHash: string(hash),
			Role:         user.RoleUser,
			EmployeeID:   &emp.ID,
		})
		if err != nil {
			return err
		}
		emp.UserID = &newUser.ID
		emp.Username = &newUser.Username
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService. The linked
// identity and all attendance rows go with the employee; the user
// delete is explicit so the behavior does not depend on the FK cascade
// alone.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.userRepo.DeleteByEmployeeID(txCtx, id); err != nil {
			return err
		}
		return s.employeeRepo.Delete(txCtx, id)
	})
}

// Dashboard implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Dashboard(ctx context.Context) (employee.DashboardResponse, error) {
	total, active, err := s.employeeRepo.CountByStatus(ctx)
	if err != nil {
		return employee.DashboardResponse{}, err
	}
	return employee.DashboardResponse{
		TotalEmployees:  total,
		ActiveEmployees: active,
	}, nil
}
