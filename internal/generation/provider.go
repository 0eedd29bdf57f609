package generation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/url"

	"github.com/phrazzld/teambuilder-api/internal/domain"
)

// Provider is the boundary between the team builder and an LLM vendor.
// Implementations must be safe for concurrent use and must not retry on
// their own; the Service owns the retry policy.
type Provider interface {
	// Name identifies the provider in logs and metrics, e.g. "openai".
	Name() string

	// Complete issues one chat completion constrained to req.Schema.
	//
	// Errors should wrap ErrTransientFailure for provider-side faults worth
	// one retry (rate limits, 5xx, replies that arrived malformed),
	// ErrUpstreamFailure for transport or request failures,
	// ErrInvalidResponse or ErrContentBlocked when the provider answered
	// without usable content. Context errors are returned as they are.
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
}

// CompletionRequest is a provider-neutral structured chat request.
type CompletionRequest struct {
	// SystemPrompt is sent with the system role
	SystemPrompt string

	// UserPrompt is sent with the user role
	UserPrompt string

	// SchemaName names the structured output schema
	SchemaName string

	// Schema is the JSON Schema document the output must follow
	Schema json.RawMessage
}

// Completion is the text a provider returned, split in the fragments the
// provider delivered it in.
type Completion struct {
	Fragments    []string
	Model        string
	FinishReason string
}

// Generator builds a team for a game version and difficulty.
// Service implements it; the HTTP and MCP front ends depend on it.
type Generator interface {
	GenerateTeam(ctx context.Context, version, difficulty string) (*domain.TeamResponse, error)
}

// IsMalformedResponse reports whether err comes from decoding a provider
// reply that arrived but could not be read as JSON of the expected shape.
// Transport errors, which net/http reports as *url.Error, never count.
func IsMalformedResponse(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return false
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
