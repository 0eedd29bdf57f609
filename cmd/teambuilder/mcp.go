package main

import (
	"github.com/phrazzld/teambuilder-api/internal/mcpserver"
	"github.com/spf13/cobra"
)

func newMCPCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the generate_team tool over MCP on stdio",
		Long: `Serve the generate_team tool over the Model Context Protocol on stdin/stdout.

Logs go to stderr; stdout carries only protocol messages.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := root.loadConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			app, err := newApplication(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			return mcpserver.Run(cmd.Context(), mcpserver.New(app.generator, log, version))
		},
	}
}
