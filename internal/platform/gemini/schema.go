package gemini

import (
	"fmt"
	"slices"

	"github.com/google/jsonschema-go/jsonschema"
	"google.golang.org/genai"
)

// convertSchema translates the subset of JSON Schema the team schema uses
// into the OpenAPI-style schema Gemini expects.
func convertSchema(s *jsonschema.Schema) (*genai.Schema, error) {
	if s == nil {
		return nil, nil
	}

	t, err := convertType(s.Type)
	if err != nil {
		return nil, err
	}

	out := &genai.Schema{
		Type:        t,
		Description: s.Description,
		Required:    slices.Clone(s.Required),
	}
	for _, v := range s.Enum {
		out.Enum = append(out.Enum, fmt.Sprint(v))
	}

	if s.Items != nil {
		if out.Items, err = convertSchema(s.Items); err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		// required fields first, in declared order, so the model emits them early
		out.PropertyOrdering = slices.Clone(s.Required)
		names := make([]string, 0, len(s.Properties))
		for name := range s.Properties {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			prop, err := convertSchema(s.Properties[name])
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", name, err)
			}
			out.Properties[name] = prop
			if !slices.Contains(out.PropertyOrdering, name) {
				out.PropertyOrdering = append(out.PropertyOrdering, name)
			}
		}
	}

	return out, nil
}

func convertType(t string) (genai.Type, error) {
	switch t {
	case "object":
		return genai.TypeObject, nil
	case "array":
		return genai.TypeArray, nil
	case "string":
		return genai.TypeString, nil
	case "integer":
		return genai.TypeInteger, nil
	case "number":
		return genai.TypeNumber, nil
	case "boolean":
		return genai.TypeBoolean, nil
	default:
		return "", fmt.Errorf("unsupported schema type %q", t)
	}
}
