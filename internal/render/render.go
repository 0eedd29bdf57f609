// Package render formats teams for the command line: a styled terminal view,
// indented JSON, or YAML.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/phrazzld/teambuilder-api/internal/domain"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Team.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
)

// ErrUnknownFormat is returned for a format other than the ones above.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the accepted formats, for flag help.
func Formats() []string {
	return []string{FormatPretty, FormatJSON, FormatYAML}
}

// Team writes team to w in the given format.
func Team(w io.Writer, team *domain.TeamResponse, format string) error {
	if team == nil {
		return errors.New("team cannot be nil")
	}

	switch strings.ToLower(format) {
	case FormatPretty:
		_, err := io.WriteString(w, Pretty(team))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(team)
	case FormatYAML:
		return writeYAML(w, team)
	default:
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
}

// writeYAML goes through the JSON encoding so keys keep their JSON names and order.
func writeYAML(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode team: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return fmt.Errorf("failed to convert team to YAML: %w", err)
	}
	blockStyle(&node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}
	return enc.Close()
}

// blockStyle clears the flow and quoting styles JSON input comes with.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// Styling
var (
	headerColor  = lipgloss.Color("#F780FF") // Bright pink
	nameColor    = lipgloss.Color("#8BE9FD") // Cyan
	moveColor    = lipgloss.Color("#E9E9F4") // Light purple/white
	mutedColor   = lipgloss.Color("#6272A4") // Muted purple
	strongColor  = lipgloss.Color("#50FA7B") // Green
	weakColor    = lipgloss.Color("#FF5555") // Red
	warningColor = lipgloss.Color("#F1FA8C") // Yellow

	headerStyle = lipgloss.NewStyle().Foreground(headerColor).Bold(true)
	nameStyle   = lipgloss.NewStyle().Foreground(nameColor).Bold(true)
	moveStyle   = lipgloss.NewStyle().Foreground(moveColor)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
	strongStyle = lipgloss.NewStyle().Foreground(strongColor)
	weakStyle   = lipgloss.NewStyle().Foreground(weakColor)
	warnStyle   = lipgloss.NewStyle().Foreground(warningColor).Bold(true)
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)
)

// Pretty renders the team for a terminal.
func Pretty(team *domain.TeamResponse) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Pokémon %s · %s", team.GameVersion, team.Difficulty)))
	b.WriteString("\n")
	if !team.IsComplete() {
		b.WriteString(warnStyle.Render(fmt.Sprintf(
			"Incomplete team: expected %d Pokémon with %d moves each",
			domain.TeamSize, domain.MovesPerMember)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, member := range team.Team {
		b.WriteString(cardStyle.Render(memberCard(member)))
		b.WriteString("\n")
	}
	return b.String()
}

func memberCard(m domain.TeamMember) string {
	lines := []string{
		nameStyle.Render(fmt.Sprintf("#%03d %s", m.PokedexNumber, m.PokemonName)),
	}

	for _, move := range m.Moves {
		power := "n/a"
		if move.Power != nil {
			power = fmt.Sprint(*move.Power)
		}
		line := fmt.Sprintf("%-16s %-10s %4s", move.Name, move.Type, power)
		if move.Method != "" {
			line += "  " + mutedStyle.Render(move.Method)
		}
		lines = append(lines, moveStyle.Render(line))
	}

	if len(m.Matchups.StrongAgainstLeaders) > 0 {
		lines = append(lines, strongStyle.Render("Strong vs: "+strings.Join(m.Matchups.StrongAgainstLeaders, ", ")))
	}
	if len(m.Matchups.WeakAgainstLeaders) > 0 {
		lines = append(lines, weakStyle.Render("Weak vs:   "+strings.Join(m.Matchups.WeakAgainstLeaders, ", ")))
	}
	return strings.Join(lines, "\n")
}
