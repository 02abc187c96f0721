package domain

import "time"

// ClueSnapshot is the pre-rewrite image of a clue, kept briefly so a
// host can undo an AI rewrite they dislike.
type ClueSnapshot struct {
	ClueID  string    `json:"clueId"`
	Clue    string    `json:"clue"`
	Answer  string    `json:"answer"`
	TakenAt time.Time `json:"takenAt"`
}
