package requestcontext

import (
	"context"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey ContextKey = "request_id"
	// DriverIDKey is the context key for the driver a request acts on
	DriverIDKey ContextKey = "driver_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// RequestID retrieves the request ID from context
func RequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithDriverID adds a driver ID to the context
func WithDriverID(ctx context.Context, driverID string) context.Context {
	if driverID == "" {
		return ctx
	}
	return context.WithValue(ctx, DriverIDKey, driverID)
}

// DriverID retrieves the driver ID from context
func DriverID(ctx context.Context) string {
	if driverID, ok := ctx.Value(DriverIDKey).(string); ok {
		return driverID
	}
	return ""
}
