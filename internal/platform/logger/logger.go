package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/teambuilder-api/internal/config"
)

type contextKey struct{}

// ParseLevel converts a configured level name (case-insensitive) to a slog.Level.
// The boolean is false when the name is not recognized; the level is then Info.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New creates a JSON logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	lvl, _ := ParseLevel(level)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger on stdout with
// the appropriate log level and sets it as the default logger for the application.
//
// It accepts a ServerConfig containing the log level setting and returns the
// configured logger.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	return SetupWithWriter(cfg, os.Stdout)
}

// SetupWithWriter is Setup with an explicit output. The mcp command uses it
// to keep stdout free for the protocol stream.
func SetupWithWriter(cfg config.ServerConfig, w io.Writer) (*slog.Logger, error) {
	if _, ok := ParseLevel(cfg.LogLevel); !ok {
		// Create a temporary logger to output the warning
		tmp := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmp.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	l := New(w, cfg.LogLevel)

	// Allows using the slog package functions directly (slog.Info, slog.Error, etc.)
	slog.SetDefault(l)
	return l, nil
}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	if l == nil {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOrDefault(ctx, slog.Default())
}

// FromContextOrDefault returns the logger stored in ctx, or def when there is none.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	if def == nil {
		return slog.Default()
	}
	return def
}
