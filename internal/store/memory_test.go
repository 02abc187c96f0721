package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStatsStoreRecordAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStatsStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Record(ctx, "qwen3:8b", 4000, base))
	require.NoError(t, s.Record(ctx, "qwen3:8b", 2000, base.Add(time.Minute)))
	require.NoError(t, s.Record(ctx, "qwen3:8b", 6000, base.Add(2*time.Minute)))

	got, err := s.Get(ctx, "qwen3:8b")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Count)
	assert.Equal(t, int64(12000), got.TotalMs)
	assert.Equal(t, int64(4000), got.AverageMs)
	assert.Equal(t, int64(2000), got.FastestMs)
	assert.Equal(t, int64(6000), got.SlowestMs)
	assert.Equal(t, base.Add(2*time.Minute), got.LastUsedAt)
}

func TestMemoryStatsStoreGetUnknownModel(t *testing.T) {
	s := NewMemoryStatsStore()

	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrModelStatsNotFound)
	assert.True(t, IsNotFoundError(err))
}

func TestMemoryStatsStoreGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStatsStore()
	require.NoError(t, s.Record(ctx, "m", 100, time.Now()))

	got, err := s.Get(ctx, "m")
	require.NoError(t, err)
	got.Count = 999

	again, err := s.Get(ctx, "m")
	require.NoError(t, err)
	assert.Equal(t, int64(1), again.Count)
}

func TestMemoryStatsStoreListOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStatsStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Record(ctx, "old", 100, base))
	require.NoError(t, s.Record(ctx, "new", 100, base.Add(time.Hour)))

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].Model)
	assert.Equal(t, "old", list[1].Model)
}
