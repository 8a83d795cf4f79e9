package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Search cache states reported by the health endpoint.
const (
	CacheDisabled = "disabled"
	CacheUp       = "up"
	CacheDown     = "down"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	SearchCache string    `json:"searchCache"`
	CheckedAt   time.Time `json:"checkedAt"`
}

var (
	currentHealth = HealthStatus{SearchCache: CacheDisabled}
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

func setHealth(h HealthStatus) {
	mu.Lock()
	currentHealth = h
	mu.Unlock()
}

// StartHealthMonitor pings the search cache once immediately and then on
// every tick until ctx is cancelled, when the status returns to disabled.
func StartHealthMonitor(ctx context.Context, client *redis.Client, interval time.Duration) {
	check := func() {
		status := CacheUp
		if err := client.Ping(ctx).Err(); err != nil {
			status = CacheDown
		}
		setHealth(HealthStatus{SearchCache: status, CheckedAt: time.Now()})
	}
	check()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				setHealth(HealthStatus{SearchCache: CacheDisabled, CheckedAt: time.Now()})
				return
			case <-ticker.C:
				check()
			}
		}
	}()
}
