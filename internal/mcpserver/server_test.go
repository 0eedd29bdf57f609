package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/phrazzld/teambuilder-api/internal/domain"
	"github.com/phrazzld/teambuilder-api/internal/generation"
	"github.com/phrazzld/teambuilder-api/internal/platform/logger"
	"github.com/phrazzld/teambuilder-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	team *domain.TeamResponse
	err  error
}

func (g stubGenerator) GenerateTeam(context.Context, string, string) (*domain.TeamResponse, error) {
	return g.team, g.err
}

// connect starts the server on in-memory transports and returns a client session.
func connect(t *testing.T, gen generation.Generator) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := New(gen, logger.New(io.Discard, "info"), "test")
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestListTools(t *testing.T) {
	session := connect(t, stubGenerator{})

	res, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})

	require.NoError(t, err)
	require.Len(t, res.Tools, 1)
	assert.Equal(t, ToolName, res.Tools[0].Name)
	assert.NotNil(t, res.Tools[0].InputSchema)
	assert.NotNil(t, res.Tools[0].OutputSchema)
}

func TestGenerateTeamTool(t *testing.T) {
	want := testutils.CreateTestTeam("Red", "easy")
	session := connect(t, stubGenerator{team: want})

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      ToolName,
		Arguments: map[string]any{"version": "Red", "difficulty": "easy"},
	})

	require.NoError(t, err)
	require.False(t, res.IsError)

	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var got domain.TeamResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, *want, got)
}

func TestGenerateTeamToolFailure(t *testing.T) {
	session := connect(t, stubGenerator{
		err: errors.New("failed to communicate with language model provider: key sk-proj-abcdefghijklmnop"),
	})

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      ToolName,
		Arguments: map[string]any{"version": "Red", "difficulty": "easy"},
	})

	require.NoError(t, err, "tool failures are reported in the result")
	require.True(t, res.IsError)
	require.NotEmpty(t, res.Content)

	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "failed to communicate with language model provider")
	assert.NotContains(t, text.Text, "sk-proj-abcdefghijklmnop")
}
