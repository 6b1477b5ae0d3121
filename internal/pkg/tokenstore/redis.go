// Package tokenstore keeps a shared blacklist of rotated refresh tokens in Redis so
// several API instances agree on which refresh tokens were already spent.
package tokenstore

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "blacklist:"

// RedisBlacklist records spent refresh token ids
type RedisBlacklist struct {
	rdb *redis.Client
}

// NewRedisBlacklist wraps an existing client
func NewRedisBlacklist(rdb *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{rdb: rdb}
}

// Connect dials Redis and verifies the connection
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return rdb, nil
}

// Blacklist marks jti as spent for ttl. It returns false when the jti was already
// blacklisted, meaning another request won the rotation race.
func (b *RedisBlacklist) Blacklist(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = time.Second
	}
	ok, err := b.rdb.SetNX(ctx, Key(jti), time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to blacklist token: %w", err)
	}
	return ok, nil
}

// Key is the Redis key used for a refresh token id
func Key(jti string) string {
	return keyPrefix + jti
}
