package domain

import "fmt"

const (
	// TeamSize is the number of Pokémon in a complete team.
	TeamSize = 6

	// MovesPerMember is the number of moves each team member carries.
	MovesPerMember = 4
)

// Move is one move of a team member.
type Move struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`

	// Power is nil when the model did not report it
	Power *int `json:"power,omitempty"`

	// Method is how the move is learned, e.g. "Level Up" or "TM"
	Method string `json:"method,omitempty"`
}

// Matchups lists the gym leader and Elite Four Pokémon a member is strong
// or weak against, in the order the model reported them.
type Matchups struct {
	StrongAgainstLeaders []string `json:"strongAgainstLeaders" validate:"required"`
	WeakAgainstLeaders   []string `json:"weakAgainstLeaders" validate:"required"`
}

// TeamMember is one Pokémon of the generated team.
type TeamMember struct {
	PokemonName   string   `json:"pokemonName" validate:"required"`
	PokedexNumber int      `json:"pokedexNumber" validate:"gt=0"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	Moves         []Move   `json:"moves" validate:"required,min=1,dive"`
	Matchups      Matchups `json:"matchups"`
}

// TeamResponse is the team returned to the caller.
type TeamResponse struct {
	GameVersion string       `json:"gameVersion" validate:"required"`
	Difficulty  string       `json:"difficulty" validate:"required"`
	Team        []TeamMember `json:"team" validate:"required,min=1,dive"`
}

// Validate checks the structural rules of a team. Required strings must be
// non-empty and the team must have at least one member. When strict is set
// the team must also have exactly TeamSize members with MovesPerMember moves
// each. The returned error wraps ErrInvalidTeam.
func (t *TeamResponse) Validate(strict bool) error {
	if t == nil {
		return fmt.Errorf("%w: team is nil", ErrInvalidTeam)
	}
	if err := validate.Struct(t); err != nil {
		return newValidationErrors(ErrInvalidTeam, err)
	}
	if !strict {
		return nil
	}

	var fields []ValidationError
	if len(t.Team) != TeamSize {
		fields = append(fields, ValidationError{
			Field: "team",
			Rule:  "len",
			Param: fmt.Sprint(TeamSize),
		})
	}
	for i, m := range t.Team {
		if len(m.Moves) != MovesPerMember {
			fields = append(fields, ValidationError{
				Field: fmt.Sprintf("team[%d].moves", i),
				Rule:  "len",
				Param: fmt.Sprint(MovesPerMember),
			})
		}
	}
	if len(fields) > 0 {
		return &ValidationErrors{category: ErrInvalidTeam, Fields: fields}
	}
	return nil
}

// IsComplete reports whether the team satisfies the size invariants.
func (t *TeamResponse) IsComplete() bool {
	if t == nil || len(t.Team) != TeamSize {
		return false
	}
	for _, m := range t.Team {
		if len(m.Moves) != MovesPerMember {
			return false
		}
	}
	return true
}
