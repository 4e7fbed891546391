package utils

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"jobcard-backend/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// GenerateCacheKey builds a deterministic key for a filtered listing query.
// Filters are sorted so the same query always hashes to the same key, and the
// resource type prefixes the key so invalidation can sweep per collection.
func GenerateCacheKey(resourceType string, filters map[string]string, page, pageSize int) string {
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	query := fmt.Sprintf("resource=%s&page=%d&page_size=%d", resourceType, page, pageSize)
	for _, k := range keys {
		query += fmt.Sprintf("&%s=%s", k, filters[k])
	}

	hash := sha256.Sum256([]byte(query))
	return fmt.Sprintf("%s:%s", resourceType, hex.EncodeToString(hash[:]))
}

// GetCachedResponse returns the cached JSON body for a key, or redis.Nil.
func GetCachedResponse(ctx context.Context, rdb *redis.Client, key string) (string, error) {
	return rdb.Get(ctx, key).Result()
}

// CacheResponse stores a JSON body under a key with a TTL.
func CacheResponse(ctx context.Context, rdb *redis.Client, key, body string, ttl time.Duration) error {
	return rdb.Set(ctx, key, body, ttl).Err()
}

// InvalidateCache deletes every cached key for the given resource type.
func InvalidateCache(rdb *redis.Client, resourceType string) error {
	pattern := fmt.Sprintf("%s:*", resourceType)
	iter := rdb.Scan(context.Background(), 0, pattern, 0).Iterator()

	for iter.Next(context.Background()) {
		key := iter.Val()
		if err := rdb.Del(context.Background(), key).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %v", key, err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("error during SCAN iteration: %v", err)
	}

	return nil
}

// InvalidateCacheAsync invalidates the cache for a resource type without
// blocking the write path.
func InvalidateCacheAsync(rdb *redis.Client, resourceType string) {
	go func() {
		if err := InvalidateCache(rdb, resourceType); err != nil {
			config.Logger.Warn("Cache invalidation failed",
				zap.String("resourceType", resourceType),
				zap.Error(err))
		}
	}()
}
