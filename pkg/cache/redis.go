// Package cache holds the shared Redis client.
//
// The storefront delegates data caching to the database, so the client's only
// consumer is the rate-limit middleware; when Redis is unreachable every
// helper degrades to a no-op and the middleware falls back to its in-memory
// counters.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/singitronic/storefront/config"
)

var RDB *redis.Client
var Ctx = context.Background()

// Connect initialises the Redis client and verifies the connection with a
// ping. Returns an error so the caller can log a warning and continue.
func Connect() error {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	if err := RDB.Ping(Ctx).Err(); err != nil {
		RDB = nil // mark as unavailable so helpers no-op safely
		return fmt.Errorf("cache: redis ping: %w", err)
	}
	return nil
}

// Incr increments key and, on first increment, applies ttl to the key.
// Returns the post-increment value. With no Redis connection it returns
// (0, false) so callers can fall back.
func Incr(key string, ttl time.Duration) (int64, bool) {
	if RDB == nil {
		return 0, false
	}

	n, err := RDB.Incr(Ctx, key).Result()
	if err != nil {
		return 0, false
	}
	if n == 1 && ttl > 0 {
		RDB.Expire(Ctx, key, ttl)
	}
	return n, true
}

// Del removes one or more keys.
func Del(keys ...string) error {
	if RDB == nil {
		return nil
	}
	return RDB.Del(Ctx, keys...).Err()
}
