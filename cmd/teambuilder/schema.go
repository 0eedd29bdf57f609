package main

import (
	"fmt"

	"github.com/phrazzld/teambuilder-api/internal/generation"
	"github.com/spf13/cobra"
)

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema generated teams follow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), generation.SchemaText())
			return err
		},
	}
}
