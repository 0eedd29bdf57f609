package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/phrazzld/teambuilder-api/internal/api/shared"
	"github.com/phrazzld/teambuilder-api/internal/domain"
	"github.com/phrazzld/teambuilder-api/internal/generation"
	"github.com/phrazzld/teambuilder-api/internal/metrics"
	"github.com/phrazzld/teambuilder-api/internal/platform/logger"
	"github.com/phrazzld/teambuilder-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator returns a fixed result and records its calls.
type stubGenerator struct {
	mu    sync.Mutex
	team  *domain.TeamResponse
	err   error
	calls [][2]string
}

func (g *stubGenerator) GenerateTeam(_ context.Context, version, difficulty string) (*domain.TeamResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, [2]string{version, difficulty})
	return g.team, g.err
}

// scriptedProvider answers every call with the same text or error.
type scriptedProvider struct {
	text string
	err  error
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) Complete(context.Context, generation.CompletionRequest) (*generation.Completion, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &generation.Completion{Fragments: []string{p.text}}, nil
}

func newTestRouter(t *testing.T, gen generation.Generator, recorder *metrics.Recorder) (http.Handler, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	log := logger.New(&logs, "debug")
	handler, err := NewTeamHandler(gen, log)
	require.NoError(t, err)
	router := NewRouter(RouterConfig{
		AllowedOrigins:        []string{"*"},
		MaxConcurrentRequests: 10,
		MetricsPath:           "/metrics",
	}, handler, recorder, log)
	return router, &logs
}

func doGet(router http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestNewTeamHandlerValidation(t *testing.T) {
	log := logger.New(io.Discard, "info")

	_, err := NewTeamHandler(nil, log)
	assert.Error(t, err)

	_, err = NewTeamHandler(&stubGenerator{}, nil)
	assert.Error(t, err)
}

func TestGenerateTeamSuccess(t *testing.T) {
	gen := &stubGenerator{team: testutils.CreateTestTeam("Red", "easy")}
	router, _ := newTestRouter(t, gen, nil)

	w := doGet(router, "/api/teambuilder/generate?version=Red&difficulty=easy")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get(shared.TraceIDHeader))

	var team domain.TeamResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &team))
	assert.Equal(t, *gen.team, team)
	assert.Equal(t, [][2]string{{"Red", "easy"}}, gen.calls)
}

func TestGenerateTeamRejectsBlankParameters(t *testing.T) {
	tests := []struct {
		name   string
		target string
		field  string
	}{
		{"missing version", "/api/teambuilder/generate?difficulty=easy", "version"},
		{"missing difficulty", "/api/teambuilder/generate?version=Red", "difficulty"},
		{"blank version", "/api/teambuilder/generate?version=%20%20&difficulty=easy", "version"},
		{"no parameters", "/api/teambuilder/generate", "version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{team: testutils.CreateTestTeam("Red", "easy")}
			router, _ := newTestRouter(t, gen, nil)

			w := doGet(router, tt.target)

			resp := testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid "+tt.field)
			assert.Equal(t, w.Header().Get(shared.TraceIDHeader), resp.TraceID)
			assert.Empty(t, gen.calls, "the generator must not run")
		})
	}
}

func TestGenerateTeamErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"upstream", fmt.Errorf("%w: status 401", generation.ErrUpstreamFailure), http.StatusBadGateway},
		{"empty", generation.ErrEmptyResponse, http.StatusInternalServerError},
		{"invalid", generation.ErrInvalidResponse, http.StatusInternalServerError},
		{"blocked", generation.ErrContentBlocked, http.StatusInternalServerError},
		{"timeout", generation.ErrTimeout, http.StatusInternalServerError},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, &stubGenerator{err: tt.err}, nil)

			w := doGet(router, "/api/teambuilder/generate?version=Red&difficulty=easy")

			resp := testutils.AssertErrorResponse(t, w, tt.wantStatus, GetSafeErrorMessage(tt.err))
			assert.Equal(t, GetSafeErrorMessage(tt.err), resp.Error)
		})
	}
}

func TestGenerateTeamDoesNotLeakProviderDetails(t *testing.T) {
	err := fmt.Errorf("%w: POST https://api.openai.com/v1/chat/completions: key sk-proj-abcdefghijklmnop",
		generation.ErrUpstreamFailure)
	router, logs := newTestRouter(t, &stubGenerator{err: err}, nil)

	w := doGet(router, "/api/teambuilder/generate?version=Red&difficulty=easy")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "openai.com")
	assert.NotContains(t, w.Body.String(), "sk-proj")
	assert.NotContains(t, logs.String(), "sk-proj-abcdefghijklmnop")
}

func TestGenerateTeamEndToEnd(t *testing.T) {
	recorder := metrics.NewRecorder()
	provider := &scriptedProvider{text: testutils.CreateTestTeamJSON(t, "Red", "easy")}
	svc, err := generation.NewService(provider, logger.New(io.Discard, "info"), recorder, generation.ServiceConfig{})
	require.NoError(t, err)
	router, _ := newTestRouter(t, svc, recorder)

	w := doGet(router, "/api/teambuilder/generate?version=Red&difficulty=easy")

	require.Equal(t, http.StatusOK, w.Code)
	var team domain.TeamResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &team))
	assert.Len(t, team.Team, domain.TeamSize)
	for _, m := range team.Team {
		assert.Len(t, m.Moves, domain.MovesPerMember)
	}

	metricsBody := doGet(router, "/metrics").Body.String()
	assert.Contains(t, metricsBody, `teambuilder_generations_total{outcome="ok"} 1`)
	assert.Contains(t, metricsBody, `route="/api/teambuilder/generate"`)
}

func TestGenerateTeamEndToEndEmptyResponse(t *testing.T) {
	svc, err := generation.NewService(&scriptedProvider{text: ""}, logger.New(io.Discard, "info"), nil,
		generation.ServiceConfig{})
	require.NoError(t, err)
	router, _ := newTestRouter(t, svc, nil)

	w := doGet(router, "/api/teambuilder/generate?version=Red&difficulty=easy")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "empty AI response")
}

func TestSchemaEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, &stubGenerator{}, nil)

	w := doGet(router, "/api/teambuilder/schema")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, generation.SchemaText(), w.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, &stubGenerator{}, nil)

	w := doGet(router, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestMetricsEndpointDisabled(t *testing.T) {
	router, _ := newTestRouter(t, &stubGenerator{}, nil)

	w := doGet(router, "/metrics")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t, &stubGenerator{}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/teambuilder/generate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Less(t, w.Code, 300)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), http.MethodGet))
}
