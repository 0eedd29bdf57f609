package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/phrazzld/teambuilder-api/internal/render"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	gameVersion string
	difficulty  string
	format      string
}

func newGenerateCommand(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one team and print it",
		Long: `Generate one team and print it.

Logs go to stderr so the team can be piped.

Examples:
  teambuilder generate --version Red --difficulty easy
  teambuilder generate --version Emerald --difficulty hard --format yaml
  teambuilder generate --version Platinum --difficulty medium --format json | jq .team`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(render.Formats(), strings.ToLower(opts.format)) {
				return fmt.Errorf("%w: %q", render.ErrUnknownFormat, opts.format)
			}

			cfg, log, err := root.loadConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			app, err := newApplication(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			team, err := app.generator.GenerateTeam(cmd.Context(), opts.gameVersion, opts.difficulty)
			if err != nil {
				return fmt.Errorf("failed to generate team: %w", err)
			}

			return render.Team(cmd.OutOrStdout(), team, opts.format)
		},
	}

	cmd.Flags().StringVar(&opts.gameVersion, "version", "", "game version, e.g. Red, Emerald, HeartGold")
	cmd.Flags().StringVar(&opts.difficulty, "difficulty", "", "difficulty: easy, medium or hard")
	cmd.Flags().StringVar(&opts.format, "format", render.FormatPretty,
		"output format: "+strings.Join(render.Formats(), ", "))
	_ = cmd.MarkFlagRequired("version")
	_ = cmd.MarkFlagRequired("difficulty")

	return cmd
}
