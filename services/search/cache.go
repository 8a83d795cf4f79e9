package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const searchCachePrefix = "search:q:"

// CachedSearcher keeps successful search results in Redis so identical
// queries do not hit the provider again within the TTL. Cache errors are
// logged and never fail a search.
type CachedSearcher struct {
	next   Searcher
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedSearcher(next Searcher, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedSearcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedSearcher{next: next, client: client, ttl: ttl, logger: logger}
}

func cacheKey(query string) string {
	sum := sha256.Sum256([]byte(query))
	return searchCachePrefix + hex.EncodeToString(sum[:])
}

func (s *CachedSearcher) Search(ctx context.Context, query string) (Result, error) {
	key := cacheKey(query)
	data, err := s.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		var res Result
		if err := json.Unmarshal([]byte(data), &res); err == nil {
			s.logger.Debug("Search cache hit", zap.String("key", key))
			return res, nil
		}
		s.logger.Warn("Discarding unreadable search cache entry", zap.String("key", key))
	case err != redis.Nil:
		s.logger.Warn("Search cache read failed", zap.Error(err))
	}

	res, err := s.next.Search(ctx, query)
	if err != nil {
		return Result{}, err
	}
	b, err := json.Marshal(res)
	if err != nil {
		return res, nil
	}
	if err := s.client.Set(ctx, key, b, s.ttl).Err(); err != nil {
		s.logger.Warn("Search cache write failed", zap.Error(err))
	}
	return res, nil
}

// Clear drops the cached result for query.
func (s *CachedSearcher) Clear(ctx context.Context, query string) error {
	return s.client.Del(ctx, cacheKey(query)).Err()
}
