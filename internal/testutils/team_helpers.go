package testutils

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/phrazzld/teambuilder-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// kantoRoster is a plausible easy-difficulty team for Pokémon Red.
var kantoRoster = []struct {
	name   string
	number int
	moves  [4]string
}{
	{"Charizard", 6, [4]string{"Flamethrower", "Slash", "Earthquake", "Fire Spin"}},
	{"Starmie", 121, [4]string{"Surf", "Psychic", "Thunderbolt", "Recover"}},
	{"Jolteon", 135, [4]string{"Thunderbolt", "Pin Missile", "Double Kick", "Quick Attack"}},
	{"Alakazam", 65, [4]string{"Psychic", "Recover", "Reflect", "Seismic Toss"}},
	{"Snorlax", 143, [4]string{"Body Slam", "Earthquake", "Rest", "Amnesia"}},
	{"Dugtrio", 51, [4]string{"Earthquake", "Slash", "Dig", "Rock Slide"}},
}

// CreateTestTeam returns a complete six member team with four moves each.
func CreateTestTeam(version, difficulty string) *domain.TeamResponse {
	team := &domain.TeamResponse{
		GameVersion: version,
		Difficulty:  difficulty,
		Team:        make([]domain.TeamMember, 0, len(kantoRoster)),
	}
	for _, p := range kantoRoster {
		member := domain.TeamMember{
			PokemonName:   p.name,
			PokedexNumber: p.number,
			ImageURL: fmt.Sprintf(
				"https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/%d.png",
				p.number,
			),
			Matchups: domain.Matchups{
				StrongAgainstLeaders: []string{"Brock's Onix", "Misty's Starmie"},
				WeakAgainstLeaders:   []string{"Lance's Dragonite"},
			},
		}
		for i, m := range p.moves {
			power := 60 + 10*i
			member.Moves = append(member.Moves, domain.Move{
				Name:   m,
				Type:   "Normal",
				Power:  &power,
				Method: "Level Up",
			})
		}
		team.Team = append(team.Team, member)
	}
	return team
}

// CreateTestTeamJSON returns CreateTestTeam encoded as the model would send it.
func CreateTestTeamJSON(t *testing.T, version, difficulty string) string {
	t.Helper()
	data, err := json.Marshal(CreateTestTeam(version, difficulty))
	require.NoError(t, err, "Failed to marshal test team")
	return string(data)
}
