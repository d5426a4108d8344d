// Package trace carries a per-request ID through context so every log line
// emitted while serving a request can be correlated.
package trace

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ctxKey string

const ctxKeyRequestID ctxKey = "request_id"

// GenerateID returns a fresh random request ID.
func GenerateID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		// keep tracing usable even if the RNG fails
		return time.Now().UTC().Format("20060102T150405.000000000")
	}
	return id.String()
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// RequestIDFromContext returns the request ID, or "" outside a traced request.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}
