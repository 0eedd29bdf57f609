package domain

import "strings"

// Documented difficulty levels. Difficulty is free text, so other values are
// forwarded to the model unchanged.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// TeamRequest is the input of a team generation.
type TeamRequest struct {
	// Version is the game version, e.g. "Red" or "HeartGold"
	Version string `json:"version" validate:"required"`

	// Difficulty selects the power tier of the roster
	Difficulty string `json:"difficulty" validate:"required"`
}

// NewTeamRequest trims and validates the request parameters.
// It returns an error wrapping ErrInvalidRequest if either is blank.
func NewTeamRequest(version, difficulty string) (TeamRequest, error) {
	req := TeamRequest{
		Version:    strings.TrimSpace(version),
		Difficulty: strings.TrimSpace(difficulty),
	}
	if err := req.Validate(); err != nil {
		return TeamRequest{}, err
	}
	return req, nil
}

// Validate checks that both parameters are present.
func (r TeamRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return newValidationErrors(ErrInvalidRequest, err)
	}
	return nil
}
