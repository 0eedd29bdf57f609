package shared

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/teambuilder-api/internal/domain"
)

// Global validator instance for reuse
var validate = validator.New()

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	// Check if the object implements the Validate interface
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	// Otherwise, use the struct validator
	return validate.Struct(v)
}

// SanitizeValidationError turns a validation failure into a client-facing
// message that names the offending fields and nothing else.
func SanitizeValidationError(err error) string {
	var domainErrs *domain.ValidationErrors
	if errors.As(err, &domainErrs) && len(domainErrs.Fields) > 0 {
		parts := make([]string, 0, len(domainErrs.Fields))
		for _, f := range domainErrs.Fields {
			parts = append(parts, fmt.Sprintf("Invalid %s: %s", f.Field, validationTagMessage(f.Rule)))
		}
		return strings.Join(parts, "; ")
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		parts := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			parts = append(parts, fmt.Sprintf("Invalid %s: %s", fe.Field(), validationTagMessage(fe.Tag())))
		}
		return strings.Join(parts, "; ")
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// validationTagMessage maps validation tags to user-friendly error messages
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "len":
		return "wrong length"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
