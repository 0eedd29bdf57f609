package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/teambuilder-api/internal/api"
	"github.com/phrazzld/teambuilder-api/internal/config"
	"github.com/phrazzld/teambuilder-api/internal/generation"
	"github.com/phrazzld/teambuilder-api/internal/metrics"
	"github.com/phrazzld/teambuilder-api/internal/platform/gemini"
	"github.com/phrazzld/teambuilder-api/internal/platform/openai"
)

// application holds the wired dependencies shared by all commands.
type application struct {
	config *config.Config
	logger *slog.Logger

	recorder  *metrics.Recorder
	generator *generation.Service
}

// newApplication wires the provider, the generation service and metrics.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	if cfg.Metrics.Enabled {
		app.recorder = metrics.NewRecorder()
	}

	provider, err := newProvider(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}
	logger.Info("LLM provider initialized", "provider", provider.Name())

	app.generator, err = generation.NewService(
		provider,
		logger.With("component", "team_generator"),
		app.recorder,
		generation.ServiceConfig{
			RequestTimeout:  cfg.LLM.RequestTimeout,
			RetryBackoff:    cfg.LLM.RetryBackoff,
			StrictTeamShape: cfg.LLM.StrictTeamShape,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create team generator: %w", err)
	}

	return app, nil
}

// newProvider builds the adapter selected by llm.provider.
func newProvider(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Provider, error) {
	switch cfg.Provider {
	case openai.ProviderName:
		return openai.NewProvider(openai.Config{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		}, logger)
	case gemini.ProviderName:
		return gemini.NewProvider(ctx, gemini.Config{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		}, logger)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}

// setupRouter creates the HTTP handler with all routes and middleware.
func (app *application) setupRouter() (http.Handler, error) {
	teams, err := api.NewTeamHandler(app.generator, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create team handler: %w", err)
	}

	routerCfg := api.RouterConfig{
		AllowedOrigins:        app.config.Server.AllowedOrigins,
		MaxConcurrentRequests: app.config.Server.MaxConcurrentRequests,
	}
	if app.config.Metrics.Enabled {
		routerCfg.MetricsPath = app.config.Metrics.Path
	}

	return api.NewRouter(routerCfg, teams, app.recorder, app.logger), nil
}
