// Package middleware contains the HTTP middleware shared by all routes.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/teambuilder-api/internal/api/shared"
	"github.com/phrazzld/teambuilder-api/internal/platform/logger"
)

// NewTraceMiddleware adds a trace ID and a request-scoped logger to the
// request context, echoes the trace ID in the X-Trace-ID response header
// and logs every completed request.
//
// An inbound X-Trace-ID header is reused when it is a valid UUID so callers
// can correlate their own logs. Apply it early so later handlers see the
// trace ID.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			traceID := shared.RequestTraceID(r)
			ctx := shared.WithTraceID(r.Context(), traceID)

			log := logger.FromContextOrDefault(ctx, base).With(slog.String("trace_id", traceID))
			if reqID := chimw.GetReqID(ctx); reqID != "" {
				log = log.With(slog.String("request_id", reqID))
			}
			ctx = logger.WithLogger(ctx, log)

			w.Header().Set(shared.TraceIDHeader, traceID)
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			log.DebugContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.InfoContext(ctx, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		})
	}
}
