package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paragraphText(count, size int) string {
	para := strings.Repeat("x", size)
	paras := make([]string, count)
	for i := range paras {
		paras[i] = para
	}
	return strings.Join(paras, "\n\n")
}

func TestSplitPreservesParagraphSequence(t *testing.T) {
	text := "first paragraph\n\nsecond paragraph\n\nthird paragraph\n\nfourth paragraph"

	res := Split(text, 40)
	require.Greater(t, res.TotalChunks, 1)

	// Rejoining the chunks with blank lines reproduces the original
	// paragraph sequence: nothing lost, reordered, or duplicated.
	var parts []string
	for _, c := range res.Chunks {
		parts = append(parts, c.Text)
	}
	assert.Equal(t, text, strings.Join(parts, "\n\n"))
}

func TestSplitRespectsTargetSize(t *testing.T) {
	text := paragraphText(10, 1000)

	res := Split(text, 3000)

	assert.Equal(t, len(text), res.OriginalLength)
	for _, c := range res.Chunks {
		// Each chunk holds whole paragraphs under the target, so it can
		// never exceed target by more than one paragraph.
		assert.LessOrEqual(t, len(c.Text), 3000+1002)
	}
}

func TestSplitNoParagraphBreaks(t *testing.T) {
	text := strings.Repeat("a", 50_000)

	res := Split(text, 8000)

	require.Equal(t, 1, res.TotalChunks)
	assert.Equal(t, text, res.Chunks[0].Text)
	assert.Equal(t, 50_000, res.ApproxChunkSize)
}

func TestSplitZeroTargetUsesDefault(t *testing.T) {
	text := paragraphText(4, 3000)

	res := Split(text, 0)

	// 4 paragraphs of 3k accumulate two per chunk under the 8k default.
	assert.Equal(t, 2, res.TotalChunks)
}

func TestSplitChunkIndexes(t *testing.T) {
	res := Split(paragraphText(6, 1000), 2000)
	for i, c := range res.Chunks {
		assert.Equal(t, i, c.Index)
	}
}

func TestRecommendedChunkSize(t *testing.T) {
	tests := []struct {
		totalLen int
		want     int
	}{
		{totalLen: 500, want: 500},
		{totalLen: 9_999, want: 9_999},
		{totalLen: 10_000, want: 8_000},
		{totalLen: 49_999, want: 8_000},
		{totalLen: 50_000, want: 12_000},
		{totalLen: 150_000, want: 18_000},
		{totalLen: 200_000, want: 25_000},
		{totalLen: 1_000_000, want: 25_000},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, RecommendedChunkSize(tc.totalLen), "totalLen=%d", tc.totalLen)
	}
}

func TestAllocateGoalsUniformChunks(t *testing.T) {
	res := Split(paragraphText(4, 1000), 1100)
	require.Equal(t, 4, res.TotalChunks)

	goals := AllocateGoals(res, 20)

	sum := 0
	for _, g := range goals {
		assert.GreaterOrEqual(t, g, 1)
		sum += g
	}
	assert.Equal(t, 20, sum)
}

func TestAllocateGoalsRemainderToEarliestChunks(t *testing.T) {
	res := Split(paragraphText(4, 1000), 1100)
	require.Equal(t, 4, res.TotalChunks)

	// 10 across 4 uniform chunks: base 2, remainder 2 to the first two.
	goals := AllocateGoals(res, 10)
	assert.Equal(t, []int{3, 3, 2, 2}, goals)
}

func TestAllocateGoalsApproximatelyTotal(t *testing.T) {
	// Uneven chunk sizes: the per-chunk scaling rounds independently, so
	// the sum may drift from the requested total by a small amount.
	text := paragraphText(3, 500) + "\n\n" + strings.Repeat("y", 4000)
	res := Split(text, 2000)
	require.Greater(t, res.TotalChunks, 1)

	desired := 12
	goals := AllocateGoals(res, desired)

	sum := 0
	for _, g := range goals {
		assert.GreaterOrEqual(t, g, 1)
		sum += g
	}
	assert.InDelta(t, desired, sum, float64(res.TotalChunks))
}

func TestAllocateGoalsFloorsAtOne(t *testing.T) {
	// Desired total below the chunk count still gives every chunk a goal.
	res := Split(paragraphText(5, 1000), 1100)
	require.Equal(t, 5, res.TotalChunks)

	goals := AllocateGoals(res, 2)
	for _, g := range goals {
		assert.GreaterOrEqual(t, g, 1)
	}
}
