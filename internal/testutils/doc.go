// Package testutils provides shared fixtures and assertions for tests.
//
// It contains:
//   - canonical team fixtures (CreateTestTeam, CreateTestTeamJSON)
//   - a capturing slog handler (NewLogCapture)
//   - HTTP error response assertions (AssertErrorResponse)
package testutils
