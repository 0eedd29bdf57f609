// Package redact provides utilities for redacting sensitive information from strings
// before they are logged or returned in error responses. Provider SDK errors may
// echo request URLs, headers and API keys; this package keeps those out of logs
// and out of anything sent back to clients.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactionPlaceholder    = "[REDACTED]"
	RedactedKeyPlaceholder  = "[REDACTED_KEY]"
	RedactedPathPlaceholder = "[REDACTED_PATH]"
	RedactedHostPlaceholder = "[REDACTED_HOST]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules run in order; keys are matched first so a key inside a URL is still
// recognizable, and paths before hosts so file names stay part of the path.
var rules = []rule{
	// OpenAI keys: sk-..., sk-proj-...
	{regexp.MustCompile(`\bsk-[A-Za-z0-9_\-]{8,}`), RedactedKeyPlaceholder},
	// Google API keys
	{regexp.MustCompile(`\bAIza[0-9A-Za-z_\-]{8,}`), RedactedKeyPlaceholder},
	// Authorization headers
	{regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9_\-.~+/=]{8,}`), "Bearer " + RedactedKeyPlaceholder},
	// key=..., api_key: ..., x-goog-api-key: ...
	{
		regexp.MustCompile(`(?i)\b((?:x-goog-)?api[_-]?key|key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		"${1}${2}" + RedactedKeyPlaceholder,
	},
	// Stack trace fragments
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), "[STACK_TRACE_REDACTED]"},
	// URLs
	{regexp.MustCompile(`\bhttps?://[^\s"']+`), RedactedHostPlaceholder},
	// File paths
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`), RedactedPathPlaceholder},
	// Hosts and host:port pairs
	{
		regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`),
		RedactedHostPlaceholder,
	},
	{regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}(?::\d{1,5})?\b`), RedactedHostPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
