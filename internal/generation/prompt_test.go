package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		version    string
		difficulty string
	}{
		{"Red", "easy"},
		{"Emerald", "medium"},
		{"Platinum", "hard"},
		{"Sword", "nuzlocke"},
	}

	for _, tt := range tests {
		t.Run(tt.version+"/"+tt.difficulty, func(t *testing.T) {
			prompt := BuildPrompt(tt.version, tt.difficulty)

			assert.Equal(t, 1, strings.Count(prompt, tt.version), "version must appear exactly once")
			assert.Equal(t, 1, strings.Count(prompt, tt.difficulty), "difficulty must appear exactly once")
			assert.Equal(t, 1, strings.Count(prompt, teamSchemaJSON), "schema must appear exactly once")
			assert.True(t, strings.HasSuffix(prompt, teamSchemaJSON), "schema closes the prompt")
			assert.Contains(t, prompt, "exactly 6 Pokémon")
		})
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	assert.Equal(t, BuildPrompt("Gold", "medium"), BuildPrompt("Gold", "medium"))
	assert.NotEqual(t, BuildPrompt("Gold", "medium"), BuildPrompt("Gold", "hard"))
}

func TestBuildCompletionRequest(t *testing.T) {
	req := buildCompletionRequest("Red", "easy")

	assert.Equal(t, SystemPrompt, req.SystemPrompt)
	assert.Equal(t, BuildPrompt("Red", "easy"), req.UserPrompt)
	assert.Equal(t, TeamSchemaName, req.SchemaName)
	assert.JSONEq(t, teamSchemaJSON, string(req.Schema))
}
