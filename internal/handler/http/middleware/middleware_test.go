package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/payrollweb/payroll-backend-go/internal/domain/user"
	"github.com/payrollweb/payroll-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const middlewareTestSecret = "test-secret-key-for-jwt"

func newMiddlewareTestJWT() jwt.Service {
	return jwt.NewJWTService(middlewareTestSecret, "1h", "24h")
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestWithBearer(t *testing.T, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// serveThrough runs a request through the verifier plus the middlewares
// under test, the same chain the router builds.
func serveThrough(t *testing.T, jwtService jwt.Service, req *http.Request, mws ...func(http.Handler) http.Handler) *httptest.ResponseRecorder {
	handler := okHandler()
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}
	handler = jwtauth.Verifier(jwtService.JWTAuth())(handler)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired_MissingToken(t *testing.T) {
	jwtService := newMiddlewareTestJWT()

	rec := serveThrough(t, jwtService, requestWithBearer(t, ""), AuthRequired(jwtService.JWTAuth()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_AccessTokenPasses(t *testing.T) {
	jwtService := newMiddlewareTestJWT()

	token, _, err := jwtService.GenerateAccessToken("user-id", "budi", nil, user.RoleUser)
	require.NoError(t, err)

	rec := serveThrough(t, jwtService, requestWithBearer(t, token), AuthRequired(jwtService.JWTAuth()))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired_RefreshTokenRejected(t *testing.T) {
	jwtService := newMiddlewareTestJWT()

	// A refresh token authenticates the refresh exchange only, never an
	// API call.
	token, _, err := jwtService.GenerateRefreshToken("user-id")
	require.NoError(t, err)

	rec := serveThrough(t, jwtService, requestWithBearer(t, token), AuthRequired(jwtService.JWTAuth()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly_AdminPasses(t *testing.T) {
	jwtService := newMiddlewareTestJWT()

	token, _, err := jwtService.GenerateAccessToken("user-id", "admin", nil, user.RoleAdmin)
	require.NoError(t, err)

	rec := serveThrough(t, jwtService, requestWithBearer(t, token),
		AuthRequired(jwtService.JWTAuth()), AdminOnly)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnly_NonAdminForbidden(t *testing.T) {
	jwtService := newMiddlewareTestJWT()

	employeeID := "emp-id"
	token, _, err := jwtService.GenerateAccessToken("user-id", "budi", &employeeID, user.RoleUser)
	require.NoError(t, err)

	rec := serveThrough(t, jwtService, requestWithBearer(t, token),
		AuthRequired(jwtService.JWTAuth()), AdminOnly)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
