package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/teambuilder-api/internal/metrics"
)

// unmatchedRoute labels requests no route matched, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// NewMetricsMiddleware records request counts and latencies by route pattern.
// A nil recorder disables recording.
func NewMetricsMiddleware(recorder *metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if recorder == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			recorder.RecordHTTPRequest(r.Method, route, status, time.Since(start))
		})
	}
}
