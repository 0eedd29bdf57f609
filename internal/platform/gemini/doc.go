// Package gemini provides an implementation of the generation.Provider interface
// that uses Google's Gemini API for generating teams.
//
// This package is an infrastructure adapter, connecting the application's
// generation logic to Google's external Gemini AI service without exposing
// the details of the external service to the core application.
//
// The canonical team schema is converted once into a genai.Schema and sent
// as the response schema together with the application/json MIME type. API
// errors are categorized the same way as the other providers: rate limits
// and 5xx responses are transient, safety blocks are reported as blocked
// content, and context errors pass through unchanged.
package gemini
