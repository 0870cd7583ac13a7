package auth

import (
	"testing"

	"github.com/payrollweb/payroll-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		FullName:        "Budi Santoso",
		Username:        "budi",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestRegisterRequest_Validate_Success(t *testing.T) {
	req := validRegisterRequest()
	assert.NoError(t, req.Validate())
}

func TestRegisterRequest_Validate_UsernameTooShort(t *testing.T) {
	req := validRegisterRequest()
	req.Username = "abc"

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "username")
}

func TestRegisterRequest_Validate_UsernameBoundary(t *testing.T) {
	req := validRegisterRequest()
	req.Username = "abcd"
	assert.NoError(t, req.Validate())
}

func TestRegisterRequest_Validate_PasswordTooShort(t *testing.T) {
	req := validRegisterRequest()
	req.Password = "12345"
	req.ConfirmPassword = "12345"

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "password")
}

func TestRegisterRequest_Validate_PasswordBoundary(t *testing.T) {
	req := validRegisterRequest()
	req.Password = "123456"
	req.ConfirmPassword = "123456"
	assert.NoError(t, req.Validate())
}

func TestRegisterRequest_Validate_ConfirmMismatch(t *testing.T) {
	req := validRegisterRequest()
	req.ConfirmPassword = "different"

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "confirm_password")
}

func TestRegisterRequest_Validate_MissingFullName(t *testing.T) {
	req := validRegisterRequest()
	req.FullName = "  "

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "full_name")
}

func TestLoginRequest_Validate(t *testing.T) {
	req := LoginRequest{Username: "budi", Password: "secret1"}
	assert.NoError(t, req.Validate())

	empty := LoginRequest{}
	err := empty.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "username")
	assert.Contains(t, errs.ToMap(), "password")
}
