package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // Sentinel comparison
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// Cache is a JSON read cache on top of Redis. A nil *Cache is a valid no-op cache.
type Cache struct {
	rdb *redis.Client // Redis client
	ttl time.Duration // Lifetime of every entry
}

// NewCache wraps rdb; entries expire after ttl
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get retrieves a value from Redis and unmarshals it into dest
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}
	val, err := c.rdb.Get(ctx, key).Bytes() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores value as JSON with the cache TTL
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	if c == nil {
		return nil
	}
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}

// Generation returns the counter stored at genKey, 0 when unset
func (c *Cache) Generation(ctx context.Context, genKey string) (int64, error) {
	if c == nil {
		return 0, nil
	}
	gen, err := c.rdb.Get(ctx, genKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil // Never bumped
	}
	return gen, err
}

// Bump advances the counter at genKey so fills started under an older generation are dropped
func (c *Cache) Bump(ctx context.Context, genKey string) error {
	if c == nil {
		return nil
	}
	return c.rdb.Incr(ctx, genKey).Err()
}

// SetAtGeneration stores value only while genKey still holds gen. It reports whether the value was
// written; a concurrent Bump makes it a no-op.
func (c *Cache) SetAtGeneration(ctx context.Context, genKey string, gen int64, key string, value any) (bool, error) {
	if c == nil {
		return false, nil
	}
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return false, err
	}
	stored := false
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return nil // Newer commit since the read started
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, b, c.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		stored = true
		return nil
	}, genKey)
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil // genKey changed under WATCH
	}
	if err != nil {
		return false, err
	}
	return stored, nil
}

// Delete removes keys from Redis
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if c == nil || len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// DeletePrefix removes every key starting with prefix
func (c *Cache) DeletePrefix(ctx context.Context, prefix string) error {
	if c == nil {
		return nil
	}
	iter := c.rdb.Scan(ctx, 0, prefix+"*", 100).Iterator() // Walk matching keys in batches
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return c.Delete(ctx, keys...)
}
