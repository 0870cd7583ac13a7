package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/payrollweb/payroll-backend-go/internal/domain/auth"
	"github.com/payrollweb/payroll-backend-go/internal/domain/employee"
	"github.com/payrollweb/payroll-backend-go/internal/domain/user"
	"github.com/payrollweb/payroll-backend-go/internal/fixtures"
	"github.com/payrollweb/payroll-backend-go/internal/pkg/database"
	"github.com/payrollweb/payroll-backend-go/internal/pkg/jwt"
	"github.com/payrollweb/payroll-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db           *database.DB
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(db *database.DB, userRepo user.UserRepository, employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:           db,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(userData)
}

// Register implements auth.AuthService. The Employee row is written
// first so its identifier can back the User's employee reference; both
// inserts share one transaction.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}

	taken, err := a.userRepo.ExistsByUsername(ctx, req.Username, nil)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return auth.RegisterResponse{}, user.ErrUsernameTaken
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var resp auth.RegisterResponse
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		position := fixtures.DefaultPosition
		newEmployee, err := a.employeeRepo.Create(txCtx, employee.Employee{
			FullName:  req.FullName,
			Phone:     req.Phone,
			Email:     req.Email,
			Position:  &position,
			WageRate:  fixtures.DefaultWageRate,
			StartDate: time.Now().UTC().Truncate(24 * time.Hour),
			Status:    employee.StatusActive,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		newUser, err := a.userRepo.Create(txCtx, user.User{
			Username:     req.Username,
			PasswordHash: passwordHash,
			Role:         user.RoleUser,
			EmployeeID:   &newEmployee.ID,
		})
		if err != nil {
			return err
		}

		resp = auth.RegisterResponse{
			EmployeeID: newEmployee.ID,
			UserID:     newUser.ID,
			Username:   newUser.Username,
		}
		return nil
	})
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	return resp, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrTokenRevoked
	}

	token, err := a.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	// Rotate: the old refresh token stops working once exchanged.
	a.jwtService.RevokeToken(refreshToken)

	return a.issueTokens(userData)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	a.jwtService.RevokeToken(refreshToken)
	return nil
}

func (a *AuthServiceImpl) issueTokens(userData user.User) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(
		userData.ID, userData.Username, userData.EmployeeID, userData.Role,
	)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.jwtService.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return tokenResponse, nil
}
