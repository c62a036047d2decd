// Package redis hosts the Redis-backed infrastructure pieces: the activity
// dedup store and the auth rate-limit counter. Both tolerate Redis being
// down; callers degrade rather than fail.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// Config holds Redis connection settings.
type Config struct {
	Addr string
	DB   int
}

// Connect builds a Redis client and verifies the server is reachable before
// handing it out. Startup fails fast on a bad address instead of surfacing
// errors request by request.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
