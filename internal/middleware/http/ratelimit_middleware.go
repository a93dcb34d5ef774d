package http

import (
	"net/http"

	"github.com/programmerrush/api-bills/internal/limiter"
	"github.com/programmerrush/api-bills/internal/service"
)

// CreateRateLimitMiddleware creates a rate-limiting middleware for a specific
// named policy. Requests are keyed by the authenticated user, so the auth
// middleware must run first.
func CreateRateLimitMiddleware(limiterManager *limiter.Manager, policyName string) func(http.Handler) http.Handler {
	limiter := limiterManager.Get(policyName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := service.UserFromContext(r.Context())
			if user == nil {
				service.WriteHttpError(w, http.StatusUnauthorized, "Unauthorized: User not found in context")
				return
			}

			allowed, err := limiter.Allow(r.Context(), user.UserID.Hex())
			if err != nil {
				service.WriteHttpError(w, http.StatusInternalServerError, "Failed to check rate limit")
				return
			}
			if !allowed {
				service.WriteHttpError(w, http.StatusTooManyRequests, "Too Many Requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
