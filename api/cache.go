package api

import (
	"context"

	"equiprent.GO/config"
)

const (
	// CacheKeyInventory caches the inventory list response in Redis.
	CacheKeyInventory = "api:inventory"
)

// InvalidateStateCaches drops Redis-cached list responses. Called after
// every successful state mutation; a no-op when Redis is not configured.
func InvalidateStateCaches(ctx context.Context) {
	if config.RedisClient == nil {
		return
	}
	_ = config.RedisClient.Del(ctx, CacheKeyInventory)
}
