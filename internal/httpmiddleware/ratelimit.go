package httpmiddleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Limiter decides whether a request from a key may proceed.
type Limiter interface {
	Allow(c *gin.Context, key string) bool
}

// RateLimit returns a gin handler enforcing per-IP limits with the given
// backend.
func RateLimit(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		if !l.Allow(c, ip) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit"})
			return
		}
		c.Next()
	}
}

// SimpleTokenBucket is an in-memory rate limiter for single-instance
// deployments.
type SimpleTokenBucket struct {
	capacity int
	rate     int
	mu       sync.Mutex
	state    map[string]*bucket
}

type bucket struct {
	tokens int
	last   time.Time
}

// NewSimpleTokenBucket creates limiter with capacity tokens and rate per minute.
func NewSimpleTokenBucket(capacity, perMinute int) *SimpleTokenBucket {
	if capacity <= 0 {
		capacity = perMinute
	}
	return &SimpleTokenBucket{
		capacity: capacity,
		rate:     perMinute,
		state:    make(map[string]*bucket),
	}
}

// Allow implements Limiter.
func (l *SimpleTokenBucket) Allow(_ *gin.Context, key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.state[key]
	now := time.Now()
	if !ok {
		b = &bucket{tokens: l.capacity - 1, last: now}
		l.state[key] = b
		return true
	}
	elapsed := now.Sub(b.last).Minutes()
	refill := int(elapsed * float64(l.rate))
	if refill > 0 {
		b.tokens += refill
		if b.tokens > l.capacity {
			b.tokens = l.capacity
		}
		b.last = now
	}
	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// RedisLimiter counts requests per key in a fixed one-minute window, shared
// across instances.
type RedisLimiter struct {
	client    *redis.Client
	perMinute int
	prefix    string
}

// NewRedisLimiter creates a Redis-backed limiter.
func NewRedisLimiter(client *redis.Client, perMinute int) *RedisLimiter {
	return &RedisLimiter{client: client, perMinute: perMinute, prefix: "eventscore:ratelimit:"}
}

// Allow implements Limiter. Fails open when Redis is unreachable.
func (l *RedisLimiter) Allow(c *gin.Context, key string) bool {
	ctx := c.Request.Context()
	window := time.Now().Unix() / 60
	redisKey := fmt.Sprintf("%s%s:%d", l.prefix, key, window)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return true
	}
	if count == 1 {
		l.client.Expire(ctx, redisKey, 2*time.Minute)
	}
	return count <= int64(l.perMinute)
}
