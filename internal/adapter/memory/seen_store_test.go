package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeenStoreExpiry(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := NewSeenStore()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", "1", time.Minute))
	require.NoError(t, s.Set(ctx, "b", "2", 0))

	v, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	now = now.Add(time.Minute)
	_, ok, _ = s.Get(ctx, "a")
	assert.False(t, ok, "key must expire exactly at its deadline")

	_, ok, _ = s.Get(ctx, "b")
	assert.True(t, ok, "zero ttl never expires")

	_, ok, _ = s.Get(ctx, "missing")
	assert.False(t, ok)
}

func TestSeenStoreSweep(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := NewSeenStore()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	_ = s.Set(ctx, "a", "1", time.Second)
	_ = s.Set(ctx, "b", "1", time.Hour)
	_ = s.Set(ctx, "c", "1", 0)

	now = now.Add(time.Minute)
	assert.Equal(t, 1, s.Sweep())
	assert.Len(t, s.data, 2)
}
