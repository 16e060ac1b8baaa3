package context_manager

import (
	"context"
)

type userIDKey struct{}

// SetUserContext stores the authenticated user id into context
func SetUserContext(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserFromContext retrieves the authenticated user id from context.
// ok is false when the request was not authenticated.
func GetUserFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDKey{}).(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}
