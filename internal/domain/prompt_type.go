package domain

// PromptType enumerates the closed set of generation intents. Each type
// determines the prompt template, the provider token budget, and the
// response validator that apply to a request.
type PromptType string

const (
	// PromptTypeTitles generates category title candidates for a theme.
	PromptTypeTitles PromptType = "titles"

	// PromptTypeFullGame generates a complete board of categories and clues.
	PromptTypeFullGame PromptType = "full-game"

	// PromptTypeCategoryClues generates the clues for one named category.
	PromptTypeCategoryClues PromptType = "category-clues"

	// PromptTypeSingleClue generates one clue/answer pair at a point value.
	PromptTypeSingleClue PromptType = "single-clue"

	// PromptTypeClueRewrite rewrites an existing clue without changing its answer.
	PromptTypeClueRewrite PromptType = "clue-rewrite"

	// PromptTypeAnswer generates the answer for an existing clue.
	PromptTypeAnswer PromptType = "answer"

	// PromptTypeValidation checks a clue/answer pair for correctness issues.
	PromptTypeValidation PromptType = "validation"

	// PromptTypeTeamNameRandom generates random team name candidates.
	PromptTypeTeamNameRandom PromptType = "team-name-random"

	// PromptTypeTeamNameEnhance punches up a team name supplied by a player.
	PromptTypeTeamNameEnhance PromptType = "team-name-enhance"
)

// AllPromptTypes lists every supported prompt type. Handlers include this
// set in the 400 response body when a request names an unknown type.
var AllPromptTypes = []PromptType{
	PromptTypeTitles,
	PromptTypeFullGame,
	PromptTypeCategoryClues,
	PromptTypeSingleClue,
	PromptTypeClueRewrite,
	PromptTypeAnswer,
	PromptTypeValidation,
	PromptTypeTeamNameRandom,
	PromptTypeTeamNameEnhance,
}

// Valid reports whether pt is a member of the closed prompt type set.
func (pt PromptType) Valid() bool {
	for _, known := range AllPromptTypes {
		if pt == known {
			return true
		}
	}
	return false
}

// IsTeamName reports whether pt is one of the team-name types, which use
// a distinct system instruction since they are not quiz-content generation.
func (pt PromptType) IsTeamName() bool {
	return pt == PromptTypeTeamNameRandom || pt == PromptTypeTeamNameEnhance
}

func (pt PromptType) String() string {
	return string(pt)
}
