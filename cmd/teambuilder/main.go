// Command teambuilder serves and generates Pokémon teams with an LLM.
//
// Usage:
//
//	teambuilder serve                                  # HTTP API
//	teambuilder generate --version Red --difficulty easy
//	teambuilder schema                                 # print the team JSON Schema
//	teambuilder mcp                                    # MCP server on stdio
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
