package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis holds the client shared by the rate limiter and the mail queue.
type Redis struct {
	Client *redis.Client
}

// NewRedis builds a client with short timeouts so an unreachable Redis
// degrades the request path instead of stalling it.
func NewRedis(addr string) *Redis {
	return &Redis{Client: redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
		PoolSize:     10,
	})}
}

// Healthy reports Redis reachability.
func (r *Redis) Healthy(ctx context.Context) bool {
	if r == nil || r.Client == nil {
		return false
	}
	return r.Client.Ping(ctx).Err() == nil
}

// Close releases the client.
func (r *Redis) Close() error {
	if r == nil || r.Client == nil {
		return nil
	}
	return r.Client.Close()
}
