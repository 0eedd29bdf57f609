package testutils

import (
	"context"
	"log/slog"
	"sync"
)

// LogEntry is a flattened log record.
type LogEntry map[string]any

// LogCapture is a memory-backed slog.Handler for asserting on log output.
// Handlers derived through WithAttrs share the same entry list.
type LogCapture struct {
	store *logStore
	attrs []slog.Attr
	level slog.Level
}

type logStore struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewLogCapture returns a handler recording records at or above level, and a
// logger writing to it.
func NewLogCapture(level slog.Level) (*LogCapture, *slog.Logger) {
	h := &LogCapture{store: &logStore{}, level: level}
	return h, slog.New(h)
}

// Enabled satisfies slog.Handler.
func (h *LogCapture) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle satisfies slog.Handler.
func (h *LogCapture) Handle(_ context.Context, r slog.Record) error {
	entry := LogEntry{
		"level":   r.Level.String(),
		"message": r.Message,
	}
	for _, attr := range h.attrs {
		entry[attr.Key] = attr.Value.Resolve().Any()
	}
	r.Attrs(func(attr slog.Attr) bool {
		entry[attr.Key] = attr.Value.Resolve().Any()
		return true
	})

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	h.store.entries = append(h.store.entries, entry)
	return nil
}

// WithAttrs satisfies slog.Handler.
func (h *LogCapture) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

// WithGroup satisfies slog.Handler. Groups are flattened.
func (h *LogCapture) WithGroup(string) slog.Handler {
	return h
}

// Entries returns a copy of the captured entries.
func (h *LogCapture) Entries() []LogEntry {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	result := make([]LogEntry, len(h.store.entries))
	copy(result, h.store.entries)
	return result
}

// Find returns the captured entries with the given message.
func (h *LogCapture) Find(message string) []LogEntry {
	var found []LogEntry
	for _, entry := range h.Entries() {
		if entry["message"] == message {
			found = append(found, entry)
		}
	}
	return found
}
