// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Derived documents (feed.xml, llms.txt, recommendation lists) are expensive
// enough to keep warm, and all of them go stale together when the content set
// changes. Every cache failure degrades to a miss.

package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// docKeyPrefix is the Valkey prefix for cached derived documents.
	docKeyPrefix = "doc:"

	// DefaultDocTTL is how long a derived document stays cached.
	DefaultDocTTL = 5 * time.Minute
)

// DocCache caches rendered derived documents in Valkey.
type DocCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDocCache creates a derived-document cache backed by the given client.
func NewDocCache(client *redis.Client, ttl time.Duration) *DocCache {
	if ttl == 0 {
		ttl = DefaultDocTTL
	}
	return &DocCache{client: client, ttl: ttl}
}

// Get retrieves a cached document by key. Returns false on miss or error.
func (dc *DocCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := dc.client.Get(ctx, docKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("doc cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("doc cache hit", "key", key)
	return val, true
}

// Set stores a rendered document with the configured TTL.
func (dc *DocCache) Set(ctx context.Context, key string, body []byte) {
	if err := dc.client.Set(ctx, docKeyPrefix+key, body, dc.ttl).Err(); err != nil {
		slog.Warn("doc cache set error", "key", key, "error", err)
	}
}

// InvalidateAll removes every cached derived document by scanning for the
// prefix. Called after a content sync: a single change can alter any other
// document's recommendation list, so everything goes at once.
func (dc *DocCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := dc.client.Scan(ctx, cursor, docKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("doc cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := dc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("doc cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("doc cache cleared", "deleted", deleted)
	}
}

// FeedKey is the cache key for the rendered RSS feed.
func FeedKey() string {
	return "feed.xml"
}

// LLMsKey is the cache key for the rendered llms.txt document.
func LLMsKey() string {
	return "llms.txt"
}

// RecommendationsKey returns the cache key for a content item's
// recommendation list.
func RecommendationsKey(contentID string) string {
	return fmt.Sprintf("recs:%s", contentID)
}
