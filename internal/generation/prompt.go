package generation

import "fmt"

// SystemPrompt fixes the model's persona and output contract.
const SystemPrompt = "You are a Pokémon team expert. Always return ONLY a valid JSON object exactly in the expected schema."

// promptTemplate takes the version, the difficulty and the schema, in that
// order. The rule text says "the requested game" instead of repeating the
// version so each parameter appears exactly once.
const promptTemplate = `You are a Pokémon strategy expert and an AI assistant focused on planning playthroughs of Pokémon role-playing games. Your task is to build a team of 6 Pokémon for the game and difficulty given below.

**MANDATORY RULES:**
1.  **Starter Pokémon:** Most games open with a choice between 3 starter Pokémon. The team may contain only 1 of them: once a starter is picked, the other two (and all of their evolutions) are forbidden. For example, in the first generation games a team with Charmander cannot also contain Bulbasaur or Squirtle.
2.  **Team size:** The team must contain exactly 6 Pokémon.
3.  **Evolution:** Never include a Pokémon that can only evolve by trading. Only evolutions by level up, evolutionary stones or friendship are allowed.
4.  **Availability:** All 6 Pokémon must be **capturable** in the requested game, as early as possible, so the player can use each of them for as much of the journey as possible.
5.  **Output structure:** The final result MUST be a single valid JSON object. Return ONLY the JSON.

**REQUEST PARAMETERS:**
* **GAME/VERSION:** %s
* **DIFFICULTY:** %s

**DIFFICULTY GUIDELINES:**
* **Easy:** Pick 6 Pokémon considered S or A tier (the most powerful, by stats or by the variety of moves they can learn) to finish the story quickly. The team must cover the whole region well, so it will mix many types.
* **Medium:** Pick 6 Pokémon considered B or C tier (average stats) that offer a moderate challenge but are still viable.
* **Hard:** Pick 6 Pokémon considered D, E or F tier (the weakest, slowest or most investment-hungry) for the journey; the team may be mono-type (all fire, all water, all grass, etc).

**ADDITIONAL INFORMATION REQUIRED:**
* For EACH Pokémon, list 4 moves. Prefer the strongest moves it can learn by **Level Up, TM or HM** and give it good coverage, for example Gardevoir with Calm Mind and Thunderbolt.
* For EACH Pokémon, analyse the full teams of the 8 **Gym Leaders** and of the **Elite Four** of the requested game. List the leaders' and Elite Four Pokémon the suggested Pokémon is super effective against (` + "`strongAgainstLeaders`" + `) and the leaders' and Elite Four Pokémon that deal super effective damage to it (` + "`weakAgainstLeaders`" + `).

**OUTPUT REQUIREMENT - THE ANSWER MUST BE EXACTLY THIS JSON (NO MARKDOWN):**
%s`

// BuildPrompt renders the user prompt for a version and difficulty. It is
// deterministic and appends the canonical schema verbatim.
func BuildPrompt(version, difficulty string) string {
	return fmt.Sprintf(promptTemplate, version, difficulty, teamSchemaJSON)
}

// buildCompletionRequest assembles the provider request for a team request.
func buildCompletionRequest(version, difficulty string) CompletionRequest {
	return CompletionRequest{
		SystemPrompt: SystemPrompt,
		UserPrompt:   BuildPrompt(version, difficulty),
		SchemaName:   TeamSchemaName,
		Schema:       SchemaJSON(),
	}
}
