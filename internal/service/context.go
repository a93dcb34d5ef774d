package service

import (
	"context"

	"github.com/programmerrush/api-bills/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const userKey contextKey = "user"

// ContextWithUser returns a copy of ctx carrying the authenticated user.
// The auth middleware calls this after verifying the access token.
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user, or nil when the request
// did not pass through the auth middleware.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
