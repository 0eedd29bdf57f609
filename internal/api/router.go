package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	apimw "github.com/phrazzld/teambuilder-api/internal/api/middleware"
	"github.com/phrazzld/teambuilder-api/internal/api/shared"
	"github.com/phrazzld/teambuilder-api/internal/metrics"
)

// RouterConfig holds the HTTP plumbing settings.
type RouterConfig struct {
	AllowedOrigins        []string
	MaxConcurrentRequests int

	// MetricsPath is where the Prometheus endpoint is mounted; empty disables it
	MetricsPath string
}

// NewRouter creates the application router with all routes and middleware.
func NewRouter(cfg RouterConfig, teams *TeamHandler, recorder *metrics.Recorder, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(apimw.NewTraceMiddleware(logger))
	r.Use(apimw.NewMetricsMiddleware(recorder))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{shared.TraceIDHeader},
		MaxAge:         300,
	}))
	if cfg.MaxConcurrentRequests > 0 {
		r.Use(chimw.Throttle(cfg.MaxConcurrentRequests))
	}

	r.Route("/api/teambuilder", func(r chi.Router) {
		r.Get("/generate", teams.GenerateTeam)
		r.Get("/schema", teams.Schema)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithText(w, r, http.StatusOK, "OK")
	})

	if cfg.MetricsPath != "" && recorder != nil {
		r.Method(http.MethodGet, cfg.MetricsPath, recorder.Handler())
	}

	return r
}
