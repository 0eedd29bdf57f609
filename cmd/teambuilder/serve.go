package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Routes:
  GET /api/teambuilder/generate?version=Red&difficulty=easy
  GET /api/teambuilder/schema
  GET /health
  GET /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := root.loadConfig(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			app, err := newApplication(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			router, err := app.setupRouter()
			if err != nil {
				return err
			}

			if err := app.startHTTPServer(cmd.Context(), router); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
}
