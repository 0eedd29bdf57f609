package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Common domain errors used across the application.
var (
	// ErrInvalidRequest is returned when a team request is missing its
	// version or difficulty.
	ErrInvalidRequest = errors.New("invalid team request")

	// ErrInvalidTeam is returned when a generated team does not satisfy the
	// structural rules of TeamResponse.
	ErrInvalidTeam = errors.New("invalid team")
)

// ValidationError describes a single field that failed validation.
type ValidationError struct {
	// Field is the JSON path of the offending field, e.g. "team[2].moves[0].name"
	Field string

	// Rule is the rule that failed, e.g. "required" or "len"
	Rule string

	// Param is the rule parameter if any, e.g. "6" for len=6
	Param string
}

// Error formats the validation failure.
func (e ValidationError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s failed %s=%s", e.Field, e.Rule, e.Param)
	}
	return fmt.Sprintf("%s failed %s", e.Field, e.Rule)
}

// ValidationErrors is a list of field failures. It wraps a category error so
// callers can use errors.Is against ErrInvalidRequest or ErrInvalidTeam.
type ValidationErrors struct {
	category error
	Fields   []ValidationError
}

// Error joins the individual field failures.
func (e *ValidationErrors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return fmt.Sprintf("%v: %s", e.category, strings.Join(parts, "; "))
}

// Unwrap exposes the category error.
func (e *ValidationErrors) Unwrap() error {
	return e.category
}

// newValidationErrors converts validator output into ValidationErrors.
// Errors that are not field failures are wrapped as-is.
func newValidationErrors(category error, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", category, err)
	}

	out := &ValidationErrors{category: category}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, ValidationError{
			Field: trimRootNamespace(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// trimRootNamespace drops the struct name validator puts in front of every
// namespace ("TeamResponse.team[0].pokemonName" -> "team[0].pokemonName").
func trimRootNamespace(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
