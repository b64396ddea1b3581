package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const solutionKeyPrefix = "solve:"

// Redis backed cache of engine responses keyed by request digest. Keys are
// expected to be stable digests computed by the caller.
type RedisSolutionCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSolutionCache(client *redis.Client, ttl time.Duration) *RedisSolutionCache {
	return &RedisSolutionCache{Client: client, TTL: ttl}
}

// Look up a cached engine response for one request digest.
func (c *RedisSolutionCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.Client == nil {
		return nil, false, errors.New("solution cache: client is nil")
	}
	if key == "" {
		return nil, false, errors.New("get solution cache: key must not be empty")
	}

	val, err := c.Client.Get(ctx, solutionKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get solution cache: %w", err)
	}
	return val, true, nil
}

// Store an engine response under one request digest.
func (c *RedisSolutionCache) Put(ctx context.Context, key string, response []byte) error {
	if c.Client == nil {
		return errors.New("solution cache: client is nil")
	}
	if key == "" {
		return errors.New("insert solution cache: key must not be empty")
	}

	if err := c.Client.Set(ctx, solutionKeyPrefix+key, response, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert solution cache: %w", err)
	}
	return nil
}
