package prompt

import "github.com/quizforge/quizforge-api/internal/domain"

// defaultTokenBudget applies to the small single-item operations.
const defaultTokenBudget = 800

// tokenBudgets caps completion length per prompt type. Full-game output
// is by far the largest payload; everything else shrinks accordingly.
var tokenBudgets = map[domain.PromptType]int{
	domain.PromptTypeTitles:          1500,
	domain.PromptTypeFullGame:        8000,
	domain.PromptTypeCategoryClues:   4000,
	domain.PromptTypeSingleClue:      defaultTokenBudget,
	domain.PromptTypeClueRewrite:     defaultTokenBudget,
	domain.PromptTypeAnswer:          defaultTokenBudget,
	domain.PromptTypeValidation:      1000,
	domain.PromptTypeTeamNameRandom:  defaultTokenBudget,
	domain.PromptTypeTeamNameEnhance: defaultTokenBudget,
}

// TokenBudget returns the completion token budget for a prompt type.
func TokenBudget(pt domain.PromptType) int {
	if budget, ok := tokenBudgets[pt]; ok {
		return budget
	}
	return defaultTokenBudget
}
