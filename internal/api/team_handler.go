package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/teambuilder-api/internal/api/shared"
	"github.com/phrazzld/teambuilder-api/internal/domain"
	"github.com/phrazzld/teambuilder-api/internal/generation"
)

// TeamHandler serves the team builder endpoints.
type TeamHandler struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(generator generation.Generator, logger *slog.Logger) (*TeamHandler, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &TeamHandler{
		generator: generator,
		logger:    logger.With(slog.String("component", "team_handler")),
	}, nil
}

// GenerateTeam handles GET /api/teambuilder/generate?version=&difficulty=.
// Blank parameters are rejected with 400 before any generation work starts.
func (h *TeamHandler) GenerateTeam(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req, err := domain.NewTeamRequest(query.Get("version"), query.Get("difficulty"))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, shared.SanitizeValidationError(err), err)
		return
	}

	team, err := h.generator.GenerateTeam(r.Context(), req.Version, req.Difficulty)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, team)
}

// Schema handles GET /api/teambuilder/schema and returns the JSON Schema the
// model is constrained to.
func (h *TeamHandler) Schema(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithRawJSON(w, r, http.StatusOK, generation.SchemaJSON())
}
