package domain

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every entity; validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report JSON names so errors match what the client and the model see.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return v
}
