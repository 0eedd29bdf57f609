package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/teambuilder-api/internal/domain"
	"github.com/phrazzld/teambuilder-api/internal/metrics"
	"github.com/phrazzld/teambuilder-api/internal/platform/logger"
)

const (
	// DefaultRequestTimeout bounds a single provider call.
	DefaultRequestTimeout = 15 * time.Second

	// DefaultRetryBackoff is the pause before the single retry.
	DefaultRetryBackoff = time.Second

	// maxAttempts is the first call plus at most one retry.
	maxAttempts = 2
)

// ServiceConfig tunes the Service. Zero values select the defaults.
type ServiceConfig struct {
	// RequestTimeout bounds each provider call
	RequestTimeout time.Duration

	// RetryBackoff is the fixed wait before retrying a transient failure
	RetryBackoff time.Duration

	// StrictTeamShape rejects teams that are not 6 members with 4 moves each
	StrictTeamShape bool
}

// Service generates teams by calling a Provider. It holds no per-request
// state and is safe for concurrent use.
type Service struct {
	provider Provider
	logger   *slog.Logger
	recorder *metrics.Recorder
	config   ServiceConfig

	// after is time.After, replaceable in tests
	after func(time.Duration) <-chan time.Time
}

// NewService creates a Service for the given provider.
//
// Parameters:
//   - provider: the LLM adapter to call
//   - logger: structured logger for operation logging
//   - recorder: metrics recorder, may be nil
//   - config: timeouts, backoff and shape strictness
func NewService(
	provider Provider,
	logger *slog.Logger,
	recorder *metrics.Recorder,
	config ServiceConfig,
) (*Service, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: provider cannot be nil", ErrInvalidConfig)
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if config.RequestTimeout < 0 || config.RetryBackoff < 0 {
		return nil, fmt.Errorf("%w: timeouts cannot be negative", ErrInvalidConfig)
	}
	if config.RequestTimeout == 0 {
		config.RequestTimeout = DefaultRequestTimeout
	}
	if config.RetryBackoff == 0 {
		config.RetryBackoff = DefaultRetryBackoff
	}

	return &Service{
		provider: provider,
		logger:   logger,
		recorder: recorder,
		config:   config,
		after:    time.After,
	}, nil
}

// GenerateTeam builds a team for the given game version and difficulty.
//
// The request is validated, rendered into a prompt and sent to the provider
// with the canonical schema as structured output constraint. Each provider
// call is bounded by the request timeout; a transient provider failure is
// retried once after the retry backoff. The returned error wraps one of the
// package sentinel errors or domain.ErrInvalidRequest.
func (s *Service) GenerateTeam(ctx context.Context, version, difficulty string) (*domain.TeamResponse, error) {
	start := time.Now()
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.String("provider", s.provider.Name()),
	)

	team, err := s.generate(ctx, log, version, difficulty)

	outcome := Outcome(err)
	s.recorder.RecordGeneration(outcome, time.Since(start))
	if err != nil {
		log.WarnContext(ctx, "team generation failed",
			"outcome", outcome,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err)
		return nil, err
	}

	log.InfoContext(ctx, "team generated",
		"game_version", team.GameVersion,
		"difficulty", team.Difficulty,
		"team_size", len(team.Team),
		"complete", team.IsComplete(),
		"duration_ms", time.Since(start).Milliseconds())
	return team, nil
}

func (s *Service) generate(
	ctx context.Context,
	log *slog.Logger,
	version, difficulty string,
) (*domain.TeamResponse, error) {
	req, err := domain.NewTeamRequest(version, difficulty)
	if err != nil {
		return nil, err
	}

	completionReq := buildCompletionRequest(req.Version, req.Difficulty)
	log.DebugContext(ctx, "prompt generated",
		"game_version", req.Version,
		"difficulty", req.Difficulty,
		"prompt_length", len(completionReq.UserPrompt))

	text, err := s.completeWithRetry(ctx, log, completionReq)
	if err != nil {
		return nil, err
	}

	team, err := ParseTeam(text, s.config.StrictTeamShape)
	if err != nil {
		log.DebugContext(ctx, "unparseable model output", "response_length", len(text))
		return nil, err
	}
	if !team.IsComplete() {
		log.WarnContext(ctx, "model returned an incomplete team",
			"team_size", len(team.Team))
	}
	return team, nil
}

// completeWithRetry calls the provider at most maxAttempts times. Only
// ErrTransientFailure is retried; the retry waits RetryBackoff unless the
// caller cancels first.
func (s *Service) completeWithRetry(
	ctx context.Context,
	log *slog.Logger,
	req CompletionRequest,
) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, err := s.attempt(ctx, log, req, attempt)
		if err == nil {
			return text, nil
		}
		if !errors.Is(err, ErrTransientFailure) {
			return "", err
		}
		lastErr = err

		if attempt == maxAttempts {
			break
		}

		log.WarnContext(ctx, "transient provider failure, retrying",
			"attempt", attempt,
			"max_attempts", maxAttempts,
			"backoff_ms", s.config.RetryBackoff.Milliseconds(),
			"error", err)

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: during retry backoff: %w", ErrCanceled, ctx.Err())
		case <-s.after(s.config.RetryBackoff):
		}
	}

	return "", fmt.Errorf("%w: gave up after %d attempts: %w", ErrUpstreamFailure, maxAttempts, lastErr)
}

// attempt performs one provider call under its own timeout and returns the
// concatenated text.
func (s *Service) attempt(
	ctx context.Context,
	log *slog.Logger,
	req CompletionRequest,
	attempt int,
) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	log.DebugContext(ctx, "calling provider",
		"attempt", attempt,
		"timeout_ms", s.config.RequestTimeout.Milliseconds())

	start := time.Now()
	completion, err := s.provider.Complete(attemptCtx, req)
	if err == nil && completion == nil {
		err = fmt.Errorf("%w: provider returned no completion", ErrEmptyResponse)
	}
	if err != nil {
		err = s.classify(ctx, attemptCtx, err)
	}

	var text string
	if err == nil {
		text = strings.Join(completion.Fragments, "")
		if strings.TrimSpace(text) == "" {
			err = ErrEmptyResponse
		}
	}

	s.recorder.RecordProviderAttempt(s.provider.Name(), Outcome(err), time.Since(start))
	if err != nil {
		return "", err
	}

	log.DebugContext(ctx, "provider call succeeded",
		"attempt", attempt,
		"model", completion.Model,
		"finish_reason", completion.FinishReason,
		"fragments", len(completion.Fragments),
		"response_length", len(text))
	return text, nil
}

// classify maps a provider error onto the package taxonomy. Caller
// cancellation wins over everything, then the attempt deadline.
func (s *Service) classify(ctx, attemptCtx context.Context, err error) error {
	switch {
	case ctx.Err() != nil:
		return fmt.Errorf("%w: %w", ErrCanceled, ctx.Err())
	case errors.Is(attemptCtx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w after %s: %w", ErrTimeout, s.config.RequestTimeout, err)
	case errors.Is(err, ErrTransientFailure),
		errors.Is(err, ErrUpstreamFailure),
		errors.Is(err, ErrEmptyResponse),
		errors.Is(err, ErrContentBlocked),
		errors.Is(err, ErrInvalidResponse):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}
}
