package http

import (
	"net/http"

	"github.com/programmerrush/api-bills/internal/constants"
	"github.com/programmerrush/api-bills/internal/service"
)

// CompanyAccessMiddleware guards company-scoped routes.
type CompanyAccessMiddleware func(http.Handler) http.Handler

// NewCompanyAccessMiddleware creates a middleware allowing a request through
// when the caller holds a privileged role or when the token's company matches
// the {companyId} path segment. Must run after the auth middleware.
func NewCompanyAccessMiddleware() CompanyAccessMiddleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := service.UserFromContext(r.Context())
			if user == nil {
				service.WriteHttpError(w, http.StatusUnauthorized, "Unauthorized: User not found in context")
				return
			}

			if constants.IsPrivileged(user.Role) {
				next.ServeHTTP(w, r)
				return
			}

			if companyID := r.PathValue("companyId"); companyID != "" && !user.Company.IsZero() && user.Company.Hex() == companyID {
				next.ServeHTTP(w, r)
				return
			}

			service.WriteHttpError(w, http.StatusForbidden, "Forbidden: Not a member of this company")
		})
	}
}

// RequireRoles creates a middleware that only lets the named roles through.
// Used for the admin-only company management routes.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := service.UserFromContext(r.Context())
			if user == nil {
				service.WriteHttpError(w, http.StatusUnauthorized, "Unauthorized: User not found in context")
				return
			}
			if _, ok := allowed[user.Role]; !ok {
				service.WriteHttpError(w, http.StatusForbidden, "Forbidden: Insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
