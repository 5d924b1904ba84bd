package vies

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vatkit/vatkit/pkg/cache"
)

// ResultCache stores confirmed lookup results keyed by the full VAT
// identifier (e.g. "DE123456789"). Implementations must be safe for
// concurrent use. Get reports a miss for expired or absent keys; Set is
// best-effort and must not fail the validation call.
type ResultCache interface {
	Get(ctx context.Context, key string) (Result, bool)
	Set(ctx context.Context, key string, res Result)
}

type memoryCache struct {
	lru *cache.TTL[string, Result]
	ttl time.Duration
}

// NewMemoryCache creates an in-process result cache with LRU eviction at
// the given capacity and per-entry time-to-live.
func NewMemoryCache(capacity int, ttl time.Duration) ResultCache {
	return &memoryCache{
		lru: cache.NewTTL[string, Result](capacity),
		ttl: ttl,
	}
}

func (m *memoryCache) Get(_ context.Context, key string) (Result, bool) {
	return m.lru.Get(key)
}

func (m *memoryCache) Set(_ context.Context, key string, res Result) {
	m.lru.Put(key, res, m.ttl)
}

const redisKeyPrefix = "vatkit:result:"

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed result cache, for sharing confirmed
// lookups across instances. Results are stored JSON-encoded under
// "vatkit:result:<id>" with the given time-to-live. Redis errors are treated
// as cache misses; the registry call proceeds regardless.
func NewRedisCache(client *redis.Client, ttl time.Duration) ResultCache {
	return &redisCache{client: client, ttl: ttl}
}

func (r *redisCache) Get(ctx context.Context, key string) (Result, bool) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		return Result{}, false
	}
	var res Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return Result{}, false
	}
	return res, true
}

func (r *redisCache) Set(ctx context.Context, key string, res Result) {
	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	r.client.Set(ctx, redisKeyPrefix+key, raw, r.ttl)
}
