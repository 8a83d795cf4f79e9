package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestCachedSearcherHitsProviderOnce(t *testing.T) {
	mr, client := newTestRedis(t)
	stub := &stubSearcher{result: Result{Kind: KindItems, Items: []Item{{Content: "cached"}}}}
	s := NewCachedSearcher(stub, client, time.Hour, nil)
	ctx := context.Background()

	first, err := s.Search(ctx, "Paris")
	require.NoError(t, err)
	second, err := s.Search(ctx, "Paris")
	require.NoError(t, err)

	assert.Len(t, stub.queries, 1)
	assert.Equal(t, first, second)
	assert.True(t, mr.Exists(cacheKey("Paris")))
	assert.Equal(t, time.Hour, mr.TTL(cacheKey("Paris")))
}

func TestCachedSearcherDoesNotCacheErrors(t *testing.T) {
	mr, client := newTestRedis(t)
	stub := &stubSearcher{err: errors.New("boom")}
	s := NewCachedSearcher(stub, client, time.Hour, nil)

	_, err := s.Search(context.Background(), "Paris")
	require.Error(t, err)
	assert.False(t, mr.Exists(cacheKey("Paris")))
}

func TestCachedSearcherFallsThroughWhenRedisIsDown(t *testing.T) {
	mr, client := newTestRedis(t)
	mr.Close()
	stub := &stubSearcher{result: Result{Kind: KindAnswer, Text: "ok"}}
	s := NewCachedSearcher(stub, client, time.Hour, nil)

	res, err := s.Search(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Flatten())
}

func TestCachedSearcherClear(t *testing.T) {
	mr, client := newTestRedis(t)
	stub := &stubSearcher{result: Result{Kind: KindAnswer, Text: "ok"}}
	s := NewCachedSearcher(stub, client, time.Hour, nil)
	ctx := context.Background()

	_, err := s.Search(ctx, "Paris")
	require.NoError(t, err)
	require.NoError(t, s.Clear(ctx, "Paris"))
	assert.False(t, mr.Exists(cacheKey("Paris")))
}
