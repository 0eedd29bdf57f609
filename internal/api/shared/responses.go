package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/teambuilder-api/internal/platform/logger"
	"github.com/phrazzld/teambuilder-api/internal/redact"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// RespondWithJSON encodes data as the response body.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode JSON response", "error", err)
	}
}

// RespondWithRawJSON writes pre-encoded JSON.
func RespondWithRawJSON(w http.ResponseWriter, r *http.Request, status int, body []byte) {
	writeBody(w, r, status, "application/json", body)
}

// RespondWithText writes a plain text response.
func RespondWithText(w http.ResponseWriter, r *http.Request, status int, body string) {
	writeBody(w, r, status, "text/plain; charset=utf-8", []byte(body))
}

// RespondWithErrorAndLog replies with message and logs err in redacted form.
// The raw error never reaches the client. Server errors log at ERROR, 429 at
// WARN and other client errors at DEBUG.
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	ctx := r.Context()
	traceID := GetTraceID(ctx)

	attrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status_code", status),
		slog.String("client_message", message),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}
	logger.FromContext(ctx).LogAttrs(ctx, errorLevel(status), "API error response", attrs...)

	RespondWithJSON(w, r, status, ErrorResponse{Error: message, TraceID: traceID})
}

func errorLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status == http.StatusTooManyRequests:
		return slog.LevelWarn
	default:
		return slog.LevelDebug
	}
}

func writeBody(w http.ResponseWriter, r *http.Request, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.FromContext(r.Context()).ErrorContext(r.Context(), "failed to write response", "error", err)
	}
}
