package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-ads/internal/config/configs"
)

func newStore(t *testing.T) (*SeenStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rc := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rc.Close() })
	return NewSeenStore(rc), mr
}

func TestSeenStoreGetSet(t *testing.T) {
	s, mr := newStore(t)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "popup_seen:v1:p1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "popup_seen:v1:p1", "2025-06-15T09:00:00Z", time.Hour))

	v, ok, err := s.Get(ctx, "popup_seen:v1:p1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2025-06-15T09:00:00Z", v)
	assert.Equal(t, time.Hour, mr.TTL("popup_seen:v1:p1"))

	mr.FastForward(time.Hour)
	_, ok, err = s.Get(ctx, "popup_seen:v1:p1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSeenStoreWithoutTTL(t *testing.T) {
	s, mr := newStore(t)

	require.NoError(t, s.Set(context.Background(), "k", "v", 0))
	assert.Zero(t, mr.TTL("k"))
	assert.True(t, mr.Exists("k"))
}

func TestSeenStoreReportsConnectionErrors(t *testing.T) {
	s, mr := newStore(t)
	mr.Close()

	_, _, err := s.Get(context.Background(), "k")
	assert.Error(t, err)
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	rc, err := NewClient(context.Background(), configs.Redis{URL: "redis://" + mr.Addr() + "/0", DB: 3})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rc.Close() })
	assert.Equal(t, 3, rc.Options().DB)

	_, err = NewClient(context.Background(), configs.Redis{URL: "://bad", DB: -1})
	assert.Error(t, err)
}
