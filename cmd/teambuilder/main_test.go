package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/teambuilder-api/internal/config"
	"github.com/phrazzld/teambuilder-api/internal/domain"
	"github.com/phrazzld/teambuilder-api/internal/generation"
	"github.com/phrazzld/teambuilder-api/internal/platform/logger"
	"github.com/phrazzld/teambuilder-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv runs the test from an empty directory with no provider keys set.
// Viper treats empty variables as unset.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, name := range []string{
		"OPENAI_API_KEY", "GEMINI_API_KEY",
		"TEAMBUILDER_LLM_PROVIDER", "TEAMBUILDER_LLM_OPENAI_API_KEY",
		"TEAMBUILDER_LLM_OPENAI_BASE_URL", "TEAMBUILDER_LLM_GEMINI_API_KEY",
	} {
		t.Setenv(name, "")
	}
}

// fakeOpenAI answers chat completions with content.
func fakeOpenAI(t *testing.T, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   "gpt-4.1-mini",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestSchemaCommand(t *testing.T) {
	stdout, _, err := execute(t, "schema")

	require.NoError(t, err)
	assert.JSONEq(t, generation.SchemaText(), stdout)
}

func TestGenerateCommand(t *testing.T) {
	isolateEnv(t)
	srv := fakeOpenAI(t, testutils.CreateTestTeamJSON(t, "Red", "easy"))
	t.Setenv("TEAMBUILDER_LLM_OPENAI_API_KEY", "sk-test")
	t.Setenv("TEAMBUILDER_LLM_OPENAI_BASE_URL", srv.URL+"/v1/")

	stdout, stderr, err := execute(t, "generate", "--version", "Red", "--difficulty", "easy", "--format", "json")

	require.NoError(t, err, stderr)
	var team domain.TeamResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &team))
	assert.Equal(t, *testutils.CreateTestTeam("Red", "easy"), team)
	assert.Contains(t, stderr, "team generated", "logs go to stderr")
}

func TestGenerateCommandPropagatesFailures(t *testing.T) {
	isolateEnv(t)
	srv := fakeOpenAI(t, "")
	t.Setenv("TEAMBUILDER_LLM_OPENAI_API_KEY", "sk-test")
	t.Setenv("TEAMBUILDER_LLM_OPENAI_BASE_URL", srv.URL+"/v1/")

	stdout, _, err := execute(t, "generate", "--version", "Red", "--difficulty", "easy")

	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrEmptyResponse)
	assert.Empty(t, stdout)
}

func TestGenerateCommandArgumentErrors(t *testing.T) {
	isolateEnv(t)

	_, _, err := execute(t, "generate", "--version", "Red")
	assert.ErrorContains(t, err, "difficulty")

	_, _, err = execute(t, "generate", "--version", "Red", "--difficulty", "easy", "--format", "xml")
	assert.ErrorContains(t, err, "unknown output format")

	_, _, err = execute(t, "generate", "--version", "Red", "--difficulty", "easy")
	assert.ErrorContains(t, err, "invalid configuration", "missing API key")
}

func TestNewProvider(t *testing.T) {
	log := logger.New(io.Discard, "info")

	p, err := newProvider(context.Background(), config.LLMConfig{
		Provider: "openai", OpenAIAPIKey: "sk-test", OpenAIModel: "gpt-4.1-mini",
	}, log)
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())

	p, err = newProvider(context.Background(), config.LLMConfig{
		Provider: "gemini", GeminiAPIKey: "AIza-test", GeminiModel: "gemini-2.0-flash",
	}, log)
	require.NoError(t, err)
	assert.Equal(t, "gemini", p.Name())

	_, err = newProvider(context.Background(), config.LLMConfig{Provider: "llama"}, log)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                  8080,
			LogLevel:              "info",
			AllowedOrigins:        []string{"*"},
			MaxConcurrentRequests: 10,
			ReadHeaderTimeout:     time.Second,
			IdleTimeout:           time.Second,
			ShutdownTimeout:       time.Second,
		},
		LLM: config.LLMConfig{
			Provider:       "openai",
			OpenAIAPIKey:   "sk-test",
			OpenAIModel:    "gpt-4.1-mini",
			RequestTimeout: time.Second,
			RetryBackoff:   time.Millisecond,
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func TestServeLifecycle(t *testing.T) {
	app, err := newApplication(context.Background(), testConfig(), logger.New(io.Discard, "info"))
	require.NoError(t, err)
	router, err := app.setupRouter()
	require.NoError(t, err)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, listener, router) }()

	base := "http://" + listener.Addr().String()
	resp, err := http.Get(base + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))

	resp, err = http.Get(base + "/api/teambuilder/generate?version=Red")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(base + "/metrics")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestSetupRouterWithoutMetrics(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false
	app, err := newApplication(context.Background(), cfg, logger.New(io.Discard, "info"))
	require.NoError(t, err)
	assert.Nil(t, app.recorder)

	router, err := app.setupRouter()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
