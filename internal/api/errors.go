package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/teambuilder-api/internal/domain"
	"github.com/phrazzld/teambuilder-api/internal/generation"
)

// MapErrorToStatusCode picks the HTTP status for a generation error.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest

	// Provider unreachable, rejecting requests, or still failing after the retry.
	// An exhausted retry wraps both sentinels.
	case errors.Is(err, generation.ErrUpstreamFailure),
		errors.Is(err, generation.ErrTransientFailure):
		return http.StatusBadGateway

	// Unusable model output, timeouts and cancellations.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err. Provider
// details stay in the logs.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return "The version and difficulty parameters are required"

	case errors.Is(err, generation.ErrCanceled):
		return "The request was canceled"

	case errors.Is(err, generation.ErrTimeout):
		return "The AI took too long to respond"

	case errors.Is(err, generation.ErrUpstreamFailure),
		errors.Is(err, generation.ErrTransientFailure):
		return "The AI service is unavailable, please try again later"

	case errors.Is(err, generation.ErrEmptyResponse):
		return "empty AI response"

	case errors.Is(err, generation.ErrContentBlocked):
		return "The AI declined to generate this team"

	case errors.Is(err, generation.ErrInvalidResponse):
		return "The AI returned an invalid team"

	default:
		return "An unexpected error occurred"
	}
}
