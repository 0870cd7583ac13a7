package auth

import "context"

type AuthService interface {
	// Login verifies credentials and issues an access/refresh token pair
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Register creates an Employee with registration defaults plus its
	// linked User, atomically
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)

	// RefreshToken exchanges a valid refresh token for a new pair
	RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the given refresh token
	Logout(ctx context.Context, refreshToken string) error
}
