package generation

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// TeamSchemaName is the name the schema is registered under in structured
// output requests.
const TeamSchemaName = "pokemon_team_schema"

// teamSchemaJSON is the contract between the service and the model. The same
// text is appended to the prompt and sent as the structured output schema.
const teamSchemaJSON = `{
  "type": "object",
  "properties": {
    "gameVersion": { "type": "string" },
    "difficulty": { "type": "string" },
    "team": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "pokemonName": { "type": "string" },
          "pokedexNumber": { "type": "integer" },
          "imageUrl": { "type": "string" },
          "moves": {
            "type": "array",
            "items": {
              "type": "object",
              "properties": {
                "name": { "type": "string" },
                "type": { "type": "string" },
                "power": { "type": "integer" },
                "method": { "type": "string" }
              },
              "required": ["name", "type", "power", "method"]
            }
          },
          "matchups": {
            "type": "object",
            "properties": {
              "weakAgainstLeaders": {
                "type": "array",
                "items": { "type": "string" }
              },
              "strongAgainstLeaders": {
                "type": "array",
                "items": { "type": "string" }
              }
            },
            "required": ["weakAgainstLeaders", "strongAgainstLeaders"]
          }
        },
        "required": ["pokemonName", "pokedexNumber", "imageUrl", "moves", "matchups"]
      }
    }
  },
  "required": ["gameVersion", "difficulty", "team"]
}`

// teamSchema is teamSchemaJSON parsed and resolved once at start-up.
var teamSchema = mustResolveSchema(teamSchemaJSON)

func mustResolveSchema(text string) *jsonschema.Schema {
	var s jsonschema.Schema
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		panic(fmt.Sprintf("generation: team schema is not valid JSON: %v", err))
	}
	if _, err := s.Resolve(nil); err != nil {
		panic(fmt.Sprintf("generation: team schema does not resolve: %v", err))
	}
	return &s
}

// SchemaText returns the canonical team schema.
func SchemaText() string {
	return teamSchemaJSON
}

// SchemaJSON returns the canonical team schema as raw JSON for providers that
// accept a schema document.
func SchemaJSON() json.RawMessage {
	return json.RawMessage(teamSchemaJSON)
}

// Schema returns the resolved team schema. Callers must not modify it.
func Schema() *jsonschema.Schema {
	return teamSchema
}
