package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyValid(t *testing.T) {
	assert.True(t, DifficultyEasy.Valid())
	assert.True(t, DifficultyNormal.Valid())
	assert.True(t, DifficultyHard.Valid())
	assert.False(t, Difficulty("brutal").Valid())
	assert.False(t, Difficulty("").Valid())
}

func TestValueDescription(t *testing.T) {
	assert.Equal(t, "obvious, widely known facts", ValueDescription(200))
	assert.Equal(t, "deep cuts that only devoted fans know", ValueDescription(1000))

	// Off-denomination values fall back to the midpoint description.
	assert.Equal(t, ValueDescription(600), ValueDescription(300))
	assert.Equal(t, ValueDescription(600), ValueDescription(0))
}
