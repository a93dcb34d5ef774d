package http

import (
	"net/http"
	"strings"

	"github.com/programmerrush/api-bills/internal/models"
	"github.com/programmerrush/api-bills/internal/service"
	"github.com/programmerrush/api-bills/pkg/jwt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthMiddleware defines the function signature for our authentication middleware.
type AuthMiddleware func(http.Handler) http.Handler

// NewAuthMiddleware creates a middleware that verifies the Bearer token and
// stores the resolved user in the request context. Tokens are issued by the
// auth service; this service only parses and verifies them.
func NewAuthMiddleware(jwtManager *jwt.Manager) AuthMiddleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				service.WriteHttpError(w, http.StatusUnauthorized, "Unauthorized: Missing Bearer token")
				return
			}

			payload, err := jwtManager.Parse(token)
			if err != nil {
				service.WriteHttpError(w, http.StatusUnauthorized, "Unauthorized: "+err.Error())
				return
			}

			user, err := userFromPayload(payload)
			if err != nil {
				service.WriteHttpError(w, http.StatusUnauthorized, "Unauthorized: Invalid token claims")
				return
			}

			ctx := service.ContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return "", false
	}
	return auth[len(prefix):], true
}

// userFromPayload maps the token payload onto models.User. user_id and role
// are mandatory; company is optional (admins are not bound to one).
func userFromPayload(payload map[string]interface{}) (*models.User, error) {
	userHex, _ := payload["user_id"].(string)
	userID, err := primitive.ObjectIDFromHex(userHex)
	if err != nil {
		return nil, jwt.ErrTokenInvalid
	}

	role, _ := payload["role"].(string)
	if role == "" {
		return nil, jwt.ErrTokenInvalid
	}

	user := &models.User{
		UserID: userID,
		Role:   role,
	}
	user.Name, _ = payload["name"].(string)
	user.Email, _ = payload["email"].(string)

	if companyHex, ok := payload["company"].(string); ok && companyHex != "" {
		companyID, err := primitive.ObjectIDFromHex(companyHex)
		if err != nil {
			return nil, jwt.ErrTokenInvalid
		}
		user.Company = companyID
	}

	return user, nil
}
