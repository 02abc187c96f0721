package domain

// AIContext carries the fields relevant to a given prompt type. It is
// constructed fresh per request by the caller and never persisted by the
// pipeline. Which fields matter depends on the PromptType: the prompt
// builder reads the ones it needs and ignores the rest.
type AIContext struct {
	// Theme is the overall subject the host asked for.
	Theme string `json:"theme,omitempty"`

	// Count is the number of items to generate (titles, clues, names).
	Count int `json:"count,omitempty"`

	// CategoryTitle names the category for per-category generation.
	CategoryTitle string `json:"categoryTitle,omitempty"`

	// ClueID identifies the clue being rewritten, used to key undo snapshots.
	ClueID string `json:"clueId,omitempty"`

	// Clue and Answer hold the existing text for rewrite, answer
	// generation and validation requests.
	Clue   string `json:"clue,omitempty"`
	Answer string `json:"answer,omitempty"`

	// Value is the clue's point denomination (200-1000).
	Value int `json:"value,omitempty"`

	// ExistingTitles, ExistingClues and ExistingAnswers let templates
	// instruct the model to avoid duplicating content already on the board.
	ExistingTitles  []string `json:"existingTitles,omitempty"`
	ExistingClues   []string `json:"existingClues,omitempty"`
	ExistingAnswers []string `json:"existingAnswers,omitempty"`

	// SourceMaterial is free-text reference material to ground generation.
	// Long material is split into chunks before prompting.
	SourceMaterial string `json:"sourceMaterial,omitempty"`

	// ChunkIndex, ChunkTotal and ChunkGoal are set by the orchestrator in
	// chunked mode; callers never populate them directly. ChunkIndex is
	// 1-based. ChunkGoal replaces Count for the chunk's prompt.
	ChunkIndex int `json:"chunkIndex,omitempty"`
	ChunkTotal int `json:"chunkTotal,omitempty"`
	ChunkGoal  int `json:"chunkGoal,omitempty"`

	// TeamName is the player-supplied name for team-name enhancement.
	TeamName string `json:"teamName,omitempty"`

	// Notes carries freeform host guidance appended to the prompt.
	Notes string `json:"notes,omitempty"`
}
