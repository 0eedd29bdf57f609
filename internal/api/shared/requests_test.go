package shared

import (
	"errors"
	"testing"

	"github.com/phrazzld/teambuilder-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pagingQuery struct {
	Limit int `validate:"min=1,max=50"`
}

func TestValidateRequestUsesValidateMethod(t *testing.T) {
	err := ValidateRequest(&domain.TeamRequest{Version: "Red"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.NoError(t, ValidateRequest(&domain.TeamRequest{Version: "Red", Difficulty: "easy"}))
}

func TestValidateRequestFallsBackToStructTags(t *testing.T) {
	assert.NoError(t, ValidateRequest(&pagingQuery{Limit: 10}))
	assert.Error(t, ValidateRequest(&pagingQuery{Limit: 0}))
}

func TestSanitizeValidationError(t *testing.T) {
	t.Run("domain validation errors", func(t *testing.T) {
		err := (&domain.TeamRequest{}).Validate()
		msg := SanitizeValidationError(err)

		assert.Contains(t, msg, "Invalid version: required field")
		assert.Contains(t, msg, "Invalid difficulty: required field")
	})

	t.Run("validator errors", func(t *testing.T) {
		err := ValidateRequest(&pagingQuery{Limit: 100})
		assert.Equal(t, "Invalid Limit: too long", SanitizeValidationError(err))
	})

	t.Run("other errors", func(t *testing.T) {
		assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
	})
}
