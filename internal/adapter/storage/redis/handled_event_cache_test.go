package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	s := miniredis.RunT(t)
	return s, goredis.NewClient(&goredis.Options{Addr: s.Addr()})
}

func TestHandledEventCache_MarkThenSeen(t *testing.T) {
	_, client := newTestClient(t)
	cache := NewHandledEventCache(client)
	ctx := context.Background()

	seen, err := cache.Seen(ctx, "evt-1")
	require.NoError(t, err)
	assert.False(t, seen)

	ok, err := cache.Mark(ctx, "evt-1", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	seen, err = cache.Seen(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestHandledEventCache_MarkTwice(t *testing.T) {
	_, client := newTestClient(t)
	cache := NewHandledEventCache(client)
	ctx := context.Background()

	ok, err := cache.Mark(ctx, "evt-1", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cache.Mark(ctx, "evt-1", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok, "second mark must report the id as present")
}

func TestHandledEventCache_Expires(t *testing.T) {
	s, client := newTestClient(t)
	cache := NewHandledEventCache(client)
	ctx := context.Background()

	_, err := cache.Mark(ctx, "evt-1", time.Minute)
	require.NoError(t, err)

	s.FastForward(2 * time.Minute)

	seen, err := cache.Seen(ctx, "evt-1")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestHandledEventCache_Unavailable(t *testing.T) {
	s, client := newTestClient(t)
	cache := NewHandledEventCache(client)
	s.Close()

	_, err := cache.Seen(context.Background(), "evt-1")
	assert.Error(t, err)
}
