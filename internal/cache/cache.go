// Package cache throttles repeated actions such as OTP emails.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"petcare/internal/config"
)

// Throttle lets one action per key through within a window.
type Throttle interface {
	// Allow reports whether the action keyed by key may run now and, if so,
	// blocks the key for window.
	Allow(ctx context.Context, key string, window time.Duration) (bool, error)
}

// RedisThrottle keeps throttle keys in redis with SET NX PX.
type RedisThrottle struct {
	client redis.Cmdable
	prefix string
}

// NewRedisThrottle wraps an existing client. Keys are stored under prefix.
func NewRedisThrottle(client redis.Cmdable, prefix string) *RedisThrottle {
	return &RedisThrottle{client: client, prefix: prefix}
}

func (t *RedisThrottle) Allow(ctx context.Context, key string, window time.Duration) (bool, error) {
	ok, err := t.client.SetNX(ctx, t.prefix+key, 1, window).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx: %w", err)
	}
	return ok, nil
}

// NoopThrottle always allows. Used when redis is not configured.
type NoopThrottle struct{}

func (NoopThrottle) Allow(context.Context, string, time.Duration) (bool, error) {
	return true, nil
}

// NewRedisClient connects to redis and verifies the connection with PING.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
