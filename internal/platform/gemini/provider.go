package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/teambuilder-api/internal/generation"
	"google.golang.org/genai"
)

// ProviderName identifies this adapter in logs and metrics.
const ProviderName = "gemini"

// Config holds the settings needed to reach the API.
type Config struct {
	APIKey string
	Model  string

	// BaseURL overrides the API endpoint, e.g. for a test server
	BaseURL string

	// HTTPClient is optional
	HTTPClient *http.Client
}

// Provider implements generation.Provider using the Gemini API.
type Provider struct {
	client *genai.Client
	model  string
	schema *genai.Schema
	logger *slog.Logger
}

var _ generation.Provider = (*Provider)(nil)

// NewProvider creates a Gemini-backed provider.
//
// The team schema is converted up front so a schema Gemini cannot express
// fails at start-up rather than on the first request.
func NewProvider(ctx context.Context, cfg Config, logger *slog.Logger) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	schema, err := convertSchema(generation.Schema())
	if err != nil {
		return nil, fmt.Errorf("%w: team schema: %v", generation.ErrInvalidConfig, err)
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Provider{
		client: client,
		model:  cfg.Model,
		schema: schema,
		logger: logger.With(slog.String("component", "gemini_provider")),
	}, nil
}

// Name returns ProviderName.
func (p *Provider) Name() string {
	return ProviderName
}

// Complete sends one GenerateContent call constrained to the team schema.
func (p *Provider) Complete(ctx context.Context, req generation.CompletionRequest) (*generation.Completion, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		},
		ResponseMIMEType: "application/json",
		ResponseSchema:   p.schema,
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(req.UserPrompt), config)
	if err != nil {
		return nil, p.mapError(err)
	}

	return p.completion(resp)
}

// completion extracts the text parts of the first candidate.
func (p *Provider) completion(resp *genai.GenerateContentResponse) (*generation.Completion, error) {
	out := &generation.Completion{Model: p.model}
	if resp == nil {
		return out, nil
	}
	if resp.ModelVersion != "" {
		out.Model = resp.ModelVersion
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" &&
		resp.PromptFeedback.BlockReason != genai.BlockedReasonUnspecified {
		return nil, fmt.Errorf("%w: prompt blocked: %s",
			generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return out, nil
	}

	candidate := resp.Candidates[0]
	out.FinishReason = string(candidate.FinishReason)
	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}
	if candidate.Content == nil {
		return out, nil
	}
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought || part.Text == "" {
			continue
		}
		out.Fragments = append(out.Fragments, part.Text)
	}
	return out, nil
}

// mapError classifies client errors. Context errors pass through unchanged.
func (p *Provider) mapError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	code, ok := apiErrorCode(err)
	if !ok {
		if generation.IsMalformedResponse(err) {
			p.logger.Debug("malformed gemini response", "error", err)
			return fmt.Errorf("%w: malformed response: %w", generation.ErrTransientFailure, err)
		}
		return fmt.Errorf("%w: %w", generation.ErrUpstreamFailure, err)
	}

	p.logger.Debug("gemini API error", "status_code", code)
	if code == http.StatusTooManyRequests || code == http.StatusRequestTimeout || code >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d: %w", generation.ErrTransientFailure, code, err)
	}
	return fmt.Errorf("%w: status %d: %w", generation.ErrUpstreamFailure, code, err)
}

func apiErrorCode(err error) (int, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, true
	}
	return 0, false
}
