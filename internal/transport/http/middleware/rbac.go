package middleware

import (
	"net/http"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

// RequireAtLeast enforces role hierarchy: admin >= member.
// Assumes Session() and RequireUser() have already run.
func RequireAtLeast(minRole string, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok {
				writeErr(w, r, domain.ErrSessionMissing())
				return
			}

			if !domain.IsValidRole(u.Role) || !domain.IsValidRole(minRole) {
				writeErr(w, r, domain.ErrForbidden())
				return
			}

			if domain.RoleRank(u.Role) < domain.RoleRank(minRole) {
				writeErr(w, r, domain.ErrInsufficientRole(minRole))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
