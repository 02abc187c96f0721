// Package chunker splits long reference material into paragraph-aligned
// chunks and allocates a proportional generation goal to each chunk.
package chunker

import (
	"math"
	"regexp"
	"strings"
)

// DefaultTargetSize is the chunk size used when the caller does not
// supply one.
const DefaultTargetSize = 8000

// Chunk is a contiguous slice of reference text bounded by paragraph
// boundaries. Goal is filled in by AllocateGoals.
type Chunk struct {
	Text  string
	Index int
	Goal  int
}

// Result describes the outcome of splitting one reference text.
type Result struct {
	Chunks          []Chunk
	TotalChunks     int
	ApproxChunkSize int
	OriginalLength  int
}

var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

// Split breaks text on blank-line boundaries and greedily accumulates
// paragraphs into chunks of at most targetSize characters. Accumulating
// whole paragraphs preserves coherence over naive character slicing. A
// text without paragraph breaks yields a single chunk regardless of size.
func Split(text string, targetSize int) Result {
	if targetSize <= 0 {
		targetSize = DefaultTargetSize
	}

	paragraphs := paragraphBreak.Split(text, -1)
	if len(paragraphs) <= 1 {
		return singleChunk(text)
	}

	var chunks []Chunk
	var current strings.Builder
	for _, para := range paragraphs {
		if current.Len() > 0 && current.Len()+len(para)+2 > targetSize {
			chunks = append(chunks, Chunk{Text: current.String(), Index: len(chunks)})
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
	}
	if current.Len() > 0 {
		chunks = append(chunks, Chunk{Text: current.String(), Index: len(chunks)})
	}

	if len(chunks) == 0 {
		return singleChunk(text)
	}

	total := 0
	for _, c := range chunks {
		total += len(c.Text)
	}

	return Result{
		Chunks:          chunks,
		TotalChunks:     len(chunks),
		ApproxChunkSize: total / len(chunks),
		OriginalLength:  len(text),
	}
}

func singleChunk(text string) Result {
	return Result{
		Chunks:          []Chunk{{Text: text, Index: 0}},
		TotalChunks:     1,
		ApproxChunkSize: len(text),
		OriginalLength:  len(text),
	}
}

// RecommendedChunkSize returns the target chunk size for a given total
// content length. The step table bounds the number of provider round
// trips for very large source material; below 10k characters the text is
// not worth chunking at all, so the whole length is returned.
func RecommendedChunkSize(totalLen int) int {
	switch {
	case totalLen < 10_000:
		return totalLen
	case totalLen < 50_000:
		return 8_000
	case totalLen < 100_000:
		return 12_000
	case totalLen < 200_000:
		return 18_000
	default:
		return 25_000
	}
}

// AllocateGoals distributes desiredTotal generation items across the
// chunks of res. Each chunk gets a base of desiredTotal/TotalChunks, the
// remainder goes one-per-chunk to the earliest chunks, and each base is
// then scaled by the chunk's share of the average chunk length so larger
// chunks contribute proportionally more. Every goal is at least 1.
//
// The per-chunk rounding means the sum can drift slightly from
// desiredTotal; callers treat the total as approximate.
func AllocateGoals(res Result, desiredTotal int) []int {
	n := res.TotalChunks
	if n == 0 {
		return nil
	}
	if desiredTotal < n {
		desiredTotal = n
	}

	base := desiredTotal / n
	remainder := desiredTotal % n

	avg := float64(res.ApproxChunkSize)
	if avg == 0 {
		avg = 1
	}

	goals := make([]int, n)
	for i, c := range res.Chunks {
		goal := base
		if i < remainder {
			goal++
		}

		ratio := float64(len(c.Text)) / avg
		scaled := int(math.Round(float64(goal) * ratio))
		if scaled < 1 {
			scaled = 1
		}
		goals[i] = scaled
	}
	return goals
}
