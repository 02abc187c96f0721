// Package prompt renders (promptType, context, difficulty) triples into
// provider-ready system/user prompt pairs. Every template states the
// exact output JSON shape so the response validators and the templates
// stay in lock-step; change one and you must change the other.
package prompt

import (
	"fmt"
	"strings"

	"github.com/quizforge/quizforge-api/internal/domain"
	"github.com/quizforge/quizforge-api/internal/generation"
)

// System instructions. Quiz-content types share one instruction; the
// team-name types are not quiz-content generation and get their own.
const (
	systemQuizContent = "You are a trivia content writer for a quiz board game. " +
		"Respond with valid JSON only. No markdown fences, no commentary, " +
		"no text before or after the JSON."

	systemTeamNames = "You are a witty party-game host who invents memorable team names. " +
		"Respond with valid JSON only. No markdown fences, no commentary."
)

// maxSourceExcerpt caps how much reference material is inlined into a
// single prompt. Longer material goes through the chunking engine first.
const maxSourceExcerpt = 4000

// templateFunc renders the user portion of a prompt.
type templateFunc func(ctx domain.AIContext, d domain.Difficulty) (string, error)

// userTemplates is the closed dispatch table keyed by PromptType. A
// completeness test asserts it covers every member of
// domain.AllPromptTypes alongside the budget and validator tables.
var userTemplates = map[domain.PromptType]templateFunc{
	domain.PromptTypeTitles:          titlesTemplate,
	domain.PromptTypeFullGame:        fullGameTemplate,
	domain.PromptTypeCategoryClues:   categoryCluesTemplate,
	domain.PromptTypeSingleClue:      singleClueTemplate,
	domain.PromptTypeClueRewrite:     clueRewriteTemplate,
	domain.PromptTypeAnswer:          answerTemplate,
	domain.PromptTypeValidation:      validationTemplate,
	domain.PromptTypeTeamNameRandom:  teamNameRandomTemplate,
	domain.PromptTypeTeamNameEnhance: teamNameEnhanceTemplate,
}

// Builder renders prompts. It is stateless; the zero value is usable.
type Builder struct{}

// NewBuilder creates a prompt builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build renders the prompt pair for the given type, context and
// difficulty. Unknown prompt types return domain.ErrUnknownPromptType
// rather than falling back to a generic prompt.
func (b *Builder) Build(
	pt domain.PromptType,
	ctx domain.AIContext,
	d domain.Difficulty,
) (generation.Prompt, error) {
	tmpl, ok := userTemplates[pt]
	if !ok {
		return generation.Prompt{}, fmt.Errorf("%w: %q", domain.ErrUnknownPromptType, pt)
	}

	if !d.Valid() {
		d = domain.DifficultyNormal
	}

	user, err := tmpl(ctx, d)
	if err != nil {
		return generation.Prompt{}, err
	}

	// Chunked mode: position preamble plus a strict no-overlap instruction.
	if ctx.ChunkTotal > 1 {
		user = fmt.Sprintf(
			"This is chunk %d of %d of a larger source document. "+
				"Focus only on the material in this chunk; do not repeat or "+
				"overlap with content from other chunks.\n\n%s",
			ctx.ChunkIndex, ctx.ChunkTotal, user)
	}

	system := systemQuizContent
	if pt.IsTeamName() {
		system = systemTeamNames
	}

	return generation.Prompt{System: system, User: user}, nil
}

// difficultyLine phrases the difficulty for a prompt. At normal
// difficulty a clue's point value drives the phrasing instead.
func difficultyLine(d domain.Difficulty, value int) string {
	switch d {
	case domain.DifficultyEasy:
		return "Keep every clue easy: broadly known facts a casual player can get."
	case domain.DifficultyHard:
		return "Make the clues hard: aim at players who really know the subject."
	default:
		if value > 0 {
			return fmt.Sprintf("This is a %d-point clue: %s.", value, domain.ValueDescription(value))
		}
		return "Scale clue difficulty with point value: low values are " +
			domain.ValueDescription(200) + ", top values are " + domain.ValueDescription(1000) + "."
	}
}

// avoidSection renders a de-duplication instruction for already-used items.
func avoidSection(label string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	return fmt.Sprintf("\nDo not reuse or closely mirror these existing %s:\n- %s\n",
		label, strings.Join(items, "\n- "))
}

// sourceSection inlines capped reference material.
func sourceSection(material string) string {
	if material == "" {
		return ""
	}
	if len(material) > maxSourceExcerpt {
		material = material[:maxSourceExcerpt]
	}
	return fmt.Sprintf("\nBase the content on this source material:\n---\n%s\n---\n", material)
}

// notesSection appends freeform host guidance.
func notesSection(notes string) string {
	if notes == "" {
		return ""
	}
	return "\nAdditional guidance from the host: " + notes + "\n"
}

// itemCount returns the effective item count for a template: the chunk
// goal in chunked mode, the caller's count otherwise, with a fallback.
func itemCount(ctx domain.AIContext, fallback int) int {
	if ctx.ChunkTotal > 1 && ctx.ChunkGoal > 0 {
		return ctx.ChunkGoal
	}
	if ctx.Count > 0 {
		return ctx.Count
	}
	return fallback
}
