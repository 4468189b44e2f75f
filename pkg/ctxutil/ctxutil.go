package ctxutil

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	clientKey    ctxKey = "client"
)

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

// WithClient stores the rate-limit client key of the caller.
func WithClient(ctx context.Context, client string) context.Context {
	return context.WithValue(ctx, clientKey, client)
}

// ClientFromCtx extracts the client key. Returns false if missing or empty.
func ClientFromCtx(ctx context.Context) (string, bool) {
	c, ok := ctx.Value(clientKey).(string)
	if !ok || c == "" {
		return "", false
	}
	return c, true
}
