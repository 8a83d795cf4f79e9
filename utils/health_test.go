package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestHealthMonitor(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	StartHealthMonitor(ctx, client, 10*time.Millisecond)
	assert.Equal(t, CacheUp, GetHealthStatus().SearchCache)

	mr.Close()
	assert.Eventually(t, func() bool {
		return GetHealthStatus().SearchCache == CacheDown
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.Eventually(t, func() bool {
		return GetHealthStatus().SearchCache == CacheDisabled
	}, time.Second, 10*time.Millisecond)
}
