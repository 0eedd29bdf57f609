// Package openai adapts the OpenAI chat completions API to the
// generation.Provider interface.
//
// Requests carry the system prompt, the user prompt and a json_schema
// response format built from the canonical team schema. Provider errors are
// mapped onto the generation error taxonomy: rate limits and 5xx responses
// are transient, every other API error is an upstream failure, refusals and
// content filtering are reported as blocked content. Context errors are
// returned unchanged so the caller can tell a timeout from a cancellation.
//
// The SDK's own retry loop is disabled; generation.Service owns retries.
package openai
