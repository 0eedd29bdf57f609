package generation

import (
	"errors"

	"github.com/phrazzld/teambuilder-api/internal/domain"
)

// Common errors returned by the generation package
var (
	// ErrTransientFailure is returned by providers for provider-side faults
	// that may resolve on retry (rate limits, 5xx, malformed replies)
	ErrTransientFailure = errors.New("transient error from language model provider")

	// ErrUpstreamFailure is returned when the provider could not be reached,
	// rejected the request, or kept failing after the retry
	ErrUpstreamFailure = errors.New("failed to communicate with language model provider")

	// ErrEmptyResponse is returned when the provider answered with no text
	ErrEmptyResponse = errors.New("empty AI response")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTimeout is returned when a provider call exceeds the request timeout
	ErrTimeout = errors.New("language model request timed out")

	// ErrCanceled is returned when the caller cancels the generation
	ErrCanceled = errors.New("team generation canceled")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// Outcome labels used in logs and metrics.
const (
	OutcomeOK        = "ok"
	OutcomeTransient = "transient"
	OutcomeUpstream  = "upstream"
	OutcomeEmpty     = "empty"
	OutcomeInvalid   = "invalid"
	OutcomeBlocked   = "blocked"
	OutcomeTimeout   = "timeout"
	OutcomeCanceled  = "canceled"
	OutcomeRejected  = "rejected"
	OutcomeError     = "error"
)

// Outcome classifies err into one of the Outcome labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrInvalidRequest):
		return OutcomeRejected
	case errors.Is(err, ErrCanceled):
		return OutcomeCanceled
	case errors.Is(err, ErrTimeout):
		return OutcomeTimeout
	// checked before transient: an exhausted retry wraps both
	case errors.Is(err, ErrUpstreamFailure):
		return OutcomeUpstream
	case errors.Is(err, ErrTransientFailure):
		return OutcomeTransient
	case errors.Is(err, ErrEmptyResponse):
		return OutcomeEmpty
	case errors.Is(err, ErrContentBlocked):
		return OutcomeBlocked
	case errors.Is(err, ErrInvalidResponse):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
