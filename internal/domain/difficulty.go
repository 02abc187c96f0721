package domain

// Difficulty is a purely textual modifier injected into prompts.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the three supported difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// valueDescriptions maps clue point values to difficulty phrasing used in
// prompts. Consulted only when the requested difficulty is "normal": easy
// and hard override the value-based scaling entirely.
var valueDescriptions = map[int]string{
	200:  "obvious, widely known facts",
	400:  "common knowledge with a small twist",
	600:  "requires genuine familiarity with the subject",
	800:  "challenging, for enthusiasts",
	1000: "deep cuts that only devoted fans know",
}

// ValueDescription returns the difficulty phrasing for a clue point value.
// Unknown values fall back to the 600 description.
func ValueDescription(value int) string {
	if desc, ok := valueDescriptions[value]; ok {
		return desc
	}
	return valueDescriptions[600]
}
