package generation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/phrazzld/teambuilder-api/internal/domain"
	"github.com/tailscale/hujson"
)

// ParseTeam maps the model's text onto a TeamResponse.
//
// Parsing is lenient about the syntax models get wrong: a surrounding
// markdown code fence is dropped, comments and trailing commas are accepted,
// and field names match case-insensitively. It is strict about the result:
// the decoded team must pass TeamResponse.Validate(strict). Every failure
// wraps ErrInvalidResponse. The team is returned as decoded; nothing is
// repaired or padded.
func ParseTeam(text string, strict bool) (*domain.TeamResponse, error) {
	body := stripCodeFence(text)
	if body == "" {
		return nil, ErrEmptyResponse
	}

	standard, err := hujson.Standardize([]byte(body))
	if err != nil {
		return nil, fmt.Errorf("%w: malformed JSON: %v", ErrInvalidResponse, err)
	}

	// encoding/json matches object keys to struct fields case-insensitively.
	dec := json.NewDecoder(bytes.NewReader(standard))
	var team domain.TeamResponse
	if err := dec.Decode(&team); err != nil {
		return nil, fmt.Errorf("%w: failed to decode team: %v", ErrInvalidResponse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after team object", ErrInvalidResponse)
	}

	if err := team.Validate(strict); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	return &team, nil
}

// stripCodeFence removes a ```json ... ``` wrapper if the model added one.
// The fence may sit on the same line as the content.
func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))

	// The info string (```json) ends at the first newline or where the
	// JSON itself starts.
	if i := strings.IndexAny(s, "\n{["); i >= 0 {
		if isInfoString(s[:i]) {
			s = s[i:]
		}
		return strings.TrimSpace(s)
	}
	if fenceLanguages[strings.ToLower(s)] {
		return ""
	}
	return s
}

var fenceLanguages = map[string]bool{"json": true, "jsonc": true, "json5": true}

func isInfoString(s string) bool {
	return !strings.ContainsFunc(strings.TrimSpace(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_'
	})
}
