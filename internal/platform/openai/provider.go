package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/phrazzld/teambuilder-api/internal/generation"
)

// ProviderName identifies this adapter in logs and metrics.
const ProviderName = "openai"

// Config holds the settings needed to reach the API.
type Config struct {
	APIKey string
	Model  string

	// BaseURL overrides the API endpoint, e.g. for a proxy or a test server
	BaseURL string

	// HTTPClient is optional
	HTTPClient *http.Client
}

// Provider implements generation.Provider on top of the OpenAI SDK.
// The underlying client is safe for concurrent use.
type Provider struct {
	client oai.Client
	model  string
	logger *slog.Logger
}

var _ generation.Provider = (*Provider)(nil)

// NewProvider creates an OpenAI-backed provider.
// Returns an error if the API key or model is missing.
func NewProvider(cfg Config, logger *slog.Logger) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: missing OpenAI API key", generation.ErrInvalidConfig)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: missing OpenAI model name", generation.ErrInvalidConfig)
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	return &Provider{
		client: oai.NewClient(opts...),
		model:  cfg.Model,
		logger: logger.With(slog.String("component", "openai_provider")),
	}, nil
}

// Name returns ProviderName.
func (p *Provider) Name() string {
	return ProviderName
}

// Complete sends one chat completion request constrained to req.Schema.
func (p *Provider) Complete(ctx context.Context, req generation.CompletionRequest) (*generation.Completion, error) {
	params := oai.ChatCompletionNewParams{
		Model: shared.ChatModel(p.model),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.SystemMessage(req.SystemPrompt),
			oai.UserMessage(req.UserPrompt),
		},
	}
	if len(req.Schema) > 0 {
		params.ResponseFormat = oai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   req.SchemaName,
					Schema: req.Schema,
				},
			},
		}
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, p.mapError(err)
	}

	completion := &generation.Completion{Model: resp.Model}
	if len(resp.Choices) == 0 {
		return completion, nil
	}

	choice := resp.Choices[0]
	completion.FinishReason = choice.FinishReason
	if choice.Message.Refusal != "" {
		return nil, fmt.Errorf("%w: model refused: %s", generation.ErrContentBlocked, choice.Message.Refusal)
	}
	if choice.FinishReason == "content_filter" {
		return nil, fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, choice.FinishReason)
	}
	if choice.Message.Content != "" {
		completion.Fragments = []string{choice.Message.Content}
	}
	return completion, nil
}

// mapError classifies SDK errors. Context errors pass through unchanged.
func (p *Provider) mapError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr *oai.Error
	if errors.As(err, &apiErr) {
		p.logger.Debug("openai API error",
			"status_code", apiErr.StatusCode,
			"type", apiErr.Type,
			"code", apiErr.Code)
		if isTransientStatus(apiErr.StatusCode) {
			return fmt.Errorf("%w: status %d: %w", generation.ErrTransientFailure, apiErr.StatusCode, err)
		}
		return fmt.Errorf("%w: status %d: %w", generation.ErrUpstreamFailure, apiErr.StatusCode, err)
	}

	if generation.IsMalformedResponse(err) {
		p.logger.Debug("malformed openai response", "error", err)
		return fmt.Errorf("%w: malformed response: %w", generation.ErrTransientFailure, err)
	}

	return fmt.Errorf("%w: %w", generation.ErrUpstreamFailure, err)
}

func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests ||
		code == http.StatusRequestTimeout ||
		code >= http.StatusInternalServerError
}
