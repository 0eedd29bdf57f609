// Package generation builds Pokémon teams with a large language model.
//
// It owns the provider-independent half of the integration: the canonical
// JSON Schema of a team, the prompt that embeds it, the Service that calls a
// Provider with a per-attempt timeout and a single bounded retry, and the
// lenient parser that maps the model's text onto domain.TeamResponse.
//
// Provider adapters (OpenAI, Gemini) live under internal/platform and report
// failures with the sentinel errors of this package so the Service can decide
// what to retry and the HTTP layer can pick a status code.
package generation
