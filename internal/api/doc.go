// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the team generation service, translating HTTP concerns to generation
// calls and generation failures to status codes and safe messages.
package api
