package shared

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// TraceIDHeader carries the trace ID on requests and responses.
const TraceIDHeader = "X-Trace-ID"

type traceIDKey struct{}

// WithTraceID stores traceID in the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// GetTraceID returns the trace ID stored in ctx, or "".
func GetTraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDKey{}).(string)
	return traceID
}

// RequestTraceID returns the caller's X-Trace-ID when it is a UUID, and a
// fresh random one otherwise.
func RequestTraceID(r *http.Request) string {
	if inbound := r.Header.Get(TraceIDHeader); uuid.Validate(inbound) == nil {
		return inbound
	}
	return uuid.NewString()
}
