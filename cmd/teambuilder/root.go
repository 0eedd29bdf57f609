package main

import (
	"io"
	"log/slog"

	"github.com/phrazzld/teambuilder-api/internal/config"
	"github.com/phrazzld/teambuilder-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	configPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "teambuilder",
		Short: "Teambuilder - LLM-powered Pokémon team planner",
		Long: `Teambuilder asks a language model for a team of six Pokémon for a given
game version and difficulty, with four moves each and matchups against the
gym leaders and the Elite Four.

Configuration is read from config.yaml (or --config), overridden by
TEAMBUILDER_* environment variables. OPENAI_API_KEY and GEMINI_API_KEY are
honored as well.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")

	cmd.AddCommand(
		newServeCommand(opts),
		newGenerateCommand(opts),
		newSchemaCommand(),
		newMCPCommand(opts),
	)
	return cmd
}

// loadConfig loads configuration and sets up a logger writing to w.
func (o *rootOptions) loadConfig(w io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.SetupWithWriter(cfg.Server, w)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
