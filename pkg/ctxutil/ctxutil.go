package ctxutil

import (
	"context"
)

type ctxKey string

const (
	adminKey     ctxKey = "admin"
	requestIDKey ctxKey = "request_id"
)

// WithAdmin stores the authenticated admin account name in the context.
func WithAdmin(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, adminKey, name)
}

// AdminFromCtx extracts the admin account name from the context.
// Returns "" and false if the value is missing or empty.
func AdminFromCtx(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(adminKey).(string)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
