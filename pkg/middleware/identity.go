package middleware

import "context"

type contextKeyType string

const userIDKey contextKeyType = "user_id"

// WithUserID stores the resolved user ID in the request context so the
// request-scoped logger and downstream handlers can read it.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext extracts the resolved user ID from the request context.
// Returns an empty string when no user has been resolved.
func UserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok {
		return id
	}
	return ""
}
