package prompt

import (
	"fmt"
	"strings"

	"github.com/quizforge/quizforge-api/internal/domain"
)

// The point values every category spans.
var clueValues = []int{200, 400, 600, 800, 1000}

func titlesTemplate(ctx domain.AIContext, d domain.Difficulty) (string, error) {
	if ctx.Theme == "" && ctx.SourceMaterial == "" {
		return "", fmt.Errorf("%w: theme or sourceMaterial", domain.ErrMissingContext)
	}

	count := itemCount(ctx, 6)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate %d trivia category titles", count)
	if ctx.Theme != "" {
		fmt.Fprintf(&sb, " for the theme %q", ctx.Theme)
	}
	sb.WriteString(". Titles should be short, punchy, and distinct from each other.\n")
	sb.WriteString(avoidSection("category titles", ctx.ExistingTitles))
	sb.WriteString(sourceSection(ctx.SourceMaterial))
	sb.WriteString(notesSection(ctx.Notes))
	sb.WriteString("\nRespond with exactly this JSON shape:\n" +
		`{"titles": ["title 1", "title 2"]}`)
	return sb.String(), nil
}

func fullGameTemplate(ctx domain.AIContext, d domain.Difficulty) (string, error) {
	if ctx.Theme == "" && ctx.SourceMaterial == "" {
		return "", fmt.Errorf("%w: theme or sourceMaterial", domain.ErrMissingContext)
	}

	count := itemCount(ctx, 6)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate a complete trivia game board with %d categories", count)
	if ctx.Theme != "" {
		fmt.Fprintf(&sb, " on the theme %q", ctx.Theme)
	}
	fmt.Fprintf(&sb,
		". Each category has exactly %d clues at point values %s.\n",
		len(clueValues), joinValues(clueValues))
	sb.WriteString(difficultyLine(d, 0) + "\n")
	sb.WriteString("Clues are statements the players respond to; answers are short and unambiguous.\n")
	sb.WriteString(avoidSection("category titles", ctx.ExistingTitles))
	sb.WriteString(avoidSection("answers", ctx.ExistingAnswers))
	sb.WriteString(sourceSection(ctx.SourceMaterial))
	sb.WriteString(notesSection(ctx.Notes))
	sb.WriteString("\nRespond with exactly this JSON shape:\n" +
		`{"categories": [{"title": "Category Title", "clues": [{"clue": "clue text", "answer": "answer text", "value": 200}]}]}`)
	return sb.String(), nil
}

func categoryCluesTemplate(ctx domain.AIContext, d domain.Difficulty) (string, error) {
	if ctx.CategoryTitle == "" {
		return "", fmt.Errorf("%w: categoryTitle", domain.ErrMissingContext)
	}

	count := itemCount(ctx, len(clueValues))
	var sb strings.Builder
	fmt.Fprintf(&sb,
		"Generate %d clues for the trivia category %q, one per point value, using values %s in order.\n",
		count, ctx.CategoryTitle, joinValues(clueValues))
	sb.WriteString(difficultyLine(d, 0) + "\n")
	sb.WriteString(avoidSection("clues", ctx.ExistingClues))
	sb.WriteString(avoidSection("answers", ctx.ExistingAnswers))
	sb.WriteString(sourceSection(ctx.SourceMaterial))
	sb.WriteString(notesSection(ctx.Notes))
	sb.WriteString("\nRespond with exactly this JSON shape:\n" +
		`{"clues": [{"clue": "clue text", "answer": "answer text", "value": 200}]}`)
	return sb.String(), nil
}

func singleClueTemplate(ctx domain.AIContext, d domain.Difficulty) (string, error) {
	if ctx.CategoryTitle == "" {
		return "", fmt.Errorf("%w: categoryTitle", domain.ErrMissingContext)
	}
	if ctx.Value == 0 {
		return "", fmt.Errorf("%w: value", domain.ErrMissingContext)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate one clue worth %d points for the trivia category %q.\n",
		ctx.Value, ctx.CategoryTitle)
	sb.WriteString(difficultyLine(d, ctx.Value) + "\n")
	sb.WriteString(avoidSection("clues", ctx.ExistingClues))
	sb.WriteString(avoidSection("answers", ctx.ExistingAnswers))
	sb.WriteString(sourceSection(ctx.SourceMaterial))
	sb.WriteString(notesSection(ctx.Notes))
	sb.WriteString("\nRespond with exactly this JSON shape:\n" +
		`{"clue": "clue text", "answer": "answer text"}`)
	return sb.String(), nil
}

func clueRewriteTemplate(ctx domain.AIContext, d domain.Difficulty) (string, error) {
	if ctx.Clue == "" {
		return "", fmt.Errorf("%w: clue", domain.ErrMissingContext)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Rewrite this trivia clue so it reads better, without changing what it asks for:\n%q\n", ctx.Clue)
	if ctx.Answer != "" {
		fmt.Fprintf(&sb, "The answer must remain %q.\n", ctx.Answer)
	}
	if ctx.Value > 0 {
		sb.WriteString(difficultyLine(d, ctx.Value) + "\n")
	}
	sb.WriteString(notesSection(ctx.Notes))
	sb.WriteString("\nRespond with exactly this JSON shape:\n" +
		`{"clue": "rewritten clue text", "answer": "answer text"}`)
	return sb.String(), nil
}

func answerTemplate(ctx domain.AIContext, d domain.Difficulty) (string, error) {
	if ctx.Clue == "" {
		return "", fmt.Errorf("%w: clue", domain.ErrMissingContext)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Provide the correct answer for this trivia clue:\n%q\n", ctx.Clue)
	if ctx.CategoryTitle != "" {
		fmt.Fprintf(&sb, "The clue belongs to the category %q.\n", ctx.CategoryTitle)
	}
	sb.WriteString("The answer should be short and unambiguous.\n")
	sb.WriteString("\nRespond with exactly this JSON shape:\n" +
		`{"answer": "answer text"}`)
	return sb.String(), nil
}

func validationTemplate(ctx domain.AIContext, d domain.Difficulty) (string, error) {
	if ctx.Clue == "" || ctx.Answer == "" {
		return "", fmt.Errorf("%w: clue and answer", domain.ErrMissingContext)
	}

	var sb strings.Builder
	sb.WriteString("Check this trivia clue/answer pair for factual accuracy, ambiguity, and phrasing problems.\n")
	fmt.Fprintf(&sb, "Clue: %q\nAnswer: %q\n", ctx.Clue, ctx.Answer)
	if ctx.CategoryTitle != "" {
		fmt.Fprintf(&sb, "Category: %q\n", ctx.CategoryTitle)
	}
	sb.WriteString("\nRespond with exactly this JSON shape:\n" +
		`{"valid": true, "issues": ["issue description"], "suggestions": ["suggested fix"]}` +
		"\nUse empty arrays when there is nothing to report.")
	return sb.String(), nil
}

func teamNameRandomTemplate(ctx domain.AIContext, d domain.Difficulty) (string, error) {
	count := itemCount(ctx, 3)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Invent %d funny, family-friendly trivia team names.", count)
	if ctx.Theme != "" {
		fmt.Fprintf(&sb, " Lean into the theme %q.", ctx.Theme)
	}
	sb.WriteString("\n")
	sb.WriteString(avoidSection("team names", ctx.ExistingTitles))
	sb.WriteString("\nRespond with exactly this JSON shape:\n" +
		`{"names": ["team name 1", "team name 2"]}`)
	return sb.String(), nil
}

func teamNameEnhanceTemplate(ctx domain.AIContext, d domain.Difficulty) (string, error) {
	if ctx.TeamName == "" {
		return "", fmt.Errorf("%w: teamName", domain.ErrMissingContext)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb,
		"A player picked the team name %q. Punch it up: keep its spirit but make it funnier and more memorable.\n",
		ctx.TeamName)
	sb.WriteString("\nRespond with exactly this JSON shape:\n" +
		`{"name": "enhanced team name"}`)
	return sb.String(), nil
}

func joinValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}
