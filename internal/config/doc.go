// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional YAML file, environment
// variables). It provides type-safe access to the settings of the HTTP
// server, the LLM provider and metrics, keeping configuration details
// separate from the code that uses them.
package config
