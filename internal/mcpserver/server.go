// Package mcpserver exposes team generation as a Model Context Protocol tool
// so MCP clients (editors, agents) can request teams over stdio.
package mcpserver

import (
	"context"
	"errors"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/phrazzld/teambuilder-api/internal/domain"
	"github.com/phrazzld/teambuilder-api/internal/generation"
	"github.com/phrazzld/teambuilder-api/internal/redact"
)

// ToolName is the name clients call.
const ToolName = "generate_team"

// GenerateTeamInput is the tool's argument object.
type GenerateTeamInput struct {
	Version    string `json:"version" jsonschema:"the game version, e.g. Red, Emerald or HeartGold"`
	Difficulty string `json:"difficulty" jsonschema:"the challenge level: easy, medium or hard"`
}

// New creates an MCP server with the generate_team tool registered.
func New(generator generation.Generator, logger *slog.Logger, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "teambuilder",
		Version: version,
	}, nil)

	log := logger.With(slog.String("component", "mcp_server"))

	mcp.AddTool(server, &mcp.Tool{
		Name: ToolName,
		Description: "Build a team of six Pokémon for a game version and difficulty, " +
			"with four moves each and matchups against the gym leaders and Elite Four.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in GenerateTeamInput) (
		*mcp.CallToolResult, domain.TeamResponse, error,
	) {
		team, err := generator.GenerateTeam(ctx, in.Version, in.Difficulty)
		if err != nil {
			log.WarnContext(ctx, "tool call failed",
				"outcome", generation.Outcome(err),
				"error", redact.Error(err))
			// Only the redacted text reaches the client.
			return nil, domain.TeamResponse{}, errors.New(redact.Error(err))
		}
		log.InfoContext(ctx, "tool call succeeded",
			"game_version", team.GameVersion,
			"difficulty", team.Difficulty,
			"team_size", len(team.Team))
		return nil, *team, nil
	})

	return server
}

// Run serves server over stdin/stdout until ctx is done or the client disconnects.
func Run(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
