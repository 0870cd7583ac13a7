package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/payrollweb/payroll-backend-go/internal/domain/auth"
	"github.com/payrollweb/payroll-backend-go/internal/domain/user"
	"github.com/payrollweb/payroll-backend-go/internal/handler/http/response"
)

// AdminOnly refuses the request before any handler or data access runs
// unless the principal carries the admin role.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
