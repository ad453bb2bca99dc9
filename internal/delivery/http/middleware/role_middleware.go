package middleware

import (
	"net/http"

	"github.com/rivergarden/training-backend/internal/domain/entity"
	"github.com/rivergarden/training-backend/pkg/response"
)

// RequireRole checks that the authenticated user's role is one of the
// allowed roles. The check is plain set membership; there is no role
// hierarchy. Failures return 403 without revealing anything about the
// target resource.
func RequireRole(allowedRoles ...entity.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin guards admin-only endpoints.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireSupervisor guards endpoints scoped to the supervisor assignment
// relation.
func RequireSupervisor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleSupervisor)(next)
}

// RequireManager guards team endpoints driven by the direct-report relation.
func RequireManager(next http.Handler) http.Handler {
	return RequireRole(entity.RoleSupervisor, entity.RoleAdmin)(next)
}
