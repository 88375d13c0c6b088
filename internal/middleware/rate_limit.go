package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/tasteit/tasteit/backend/internal/metrics"
)

// ErrNoRedis is returned by the Redis-backed checks when no client is configured
var ErrNoRedis = errors.New("rate limiter has no redis client")

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// Key prefix for Redis keys
	KeyPrefix string
}

// RateLimiter throttles clients by IP. Counters live in Redis when a client is
// configured; otherwise, or when Redis fails, a per-process token bucket is used.
type RateLimiter struct {
	redis  *redis.Client
	config RateLimitConfig
	logger *zap.Logger

	mu    sync.Mutex
	local map[string]*rate.Limiter
}

// NewRateLimiter creates a new rate limiter instance. redisClient may be nil.
func NewRateLimiter(redisClient *redis.Client, config RateLimitConfig, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		redis:  redisClient,
		config: config,
		logger: logger,
		local:  make(map[string]*rate.Limiter),
	}
}

// NewPublicRateLimiter limits anonymous recipe reads to perMinute requests per client
func NewPublicRateLimiter(redisClient *redis.Client, perMinute int, logger *zap.Logger) *RateLimiter {
	return NewRateLimiter(redisClient, RateLimitConfig{
		Window:    time.Minute,
		Limit:     perMinute,
		KeyPrefix: "rate_limit:public_recipes",
	}, logger)
}

// RateLimitMiddleware returns a Gin middleware that enforces rate limiting
func (rl *RateLimiter) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.config.Limit <= 0 {
			c.Next()
			return
		}

		clientID := c.ClientIP()
		backend := "local"
		var (
			allowed   bool
			remaining int
			resetTime time.Time
			err       error
		)
		if rl.redis != nil {
			backend = "redis"
			allowed, remaining, resetTime, err = rl.IsAllowed(c.Request.Context(), clientID)
			if err != nil {
				rl.logger.Warn("redis rate limit check failed, using local limiter",
					zap.String("client", clientID),
					zap.Error(err),
				)
				backend = "local"
			}
		}
		if backend == "local" {
			allowed, remaining, resetTime = rl.allowLocal(clientID)
		}

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			metrics.RateLimitRejections.WithLabelValues(backend).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"message":     fmt.Sprintf("You have exceeded the rate limit of %d requests per %v", rl.config.Limit, rl.config.Window),
				"retry_after": int(time.Until(resetTime).Seconds()),
			})
			return
		}

		c.Next()
	}
}

// IsAllowed counts a request from clientID against its Redis window
// Returns: allowed, remaining requests, reset time, error
func (rl *RateLimiter) IsAllowed(ctx context.Context, clientID string) (bool, int, time.Time, error) {
	if rl.redis == nil {
		return false, 0, time.Time{}, ErrNoRedis
	}

	windowStart := time.Now().Truncate(rl.config.Window)
	key := rl.key(clientID, windowStart)

	// Use Redis pipeline for atomic operations
	pipe := rl.redis.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rl.config.Window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := int(incrCmd.Val())
	remaining := rl.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}

	return count <= rl.config.Limit, remaining, windowStart.Add(rl.config.Window), nil
}

// GetRemainingRequests returns the number of remaining requests for a client
func (rl *RateLimiter) GetRemainingRequests(ctx context.Context, clientID string) (int, time.Time, error) {
	if rl.redis == nil {
		return 0, time.Time{}, ErrNoRedis
	}

	windowStart := time.Now().Truncate(rl.config.Window)
	resetTime := windowStart.Add(rl.config.Window)

	count, err := rl.redis.Get(ctx, rl.key(clientID, windowStart)).Int()
	if err == redis.Nil {
		// No requests yet in this window
		return rl.config.Limit, resetTime, nil
	}
	if err != nil {
		return 0, time.Time{}, err
	}

	remaining := rl.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, resetTime, nil
}

func (rl *RateLimiter) key(clientID string, windowStart time.Time) string {
	return fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, clientID, windowStart.Unix())
}

// allowLocal applies an in-process token bucket refilling Limit tokens per Window
func (rl *RateLimiter) allowLocal(clientID string) (bool, int, time.Time) {
	rl.mu.Lock()
	limiter, ok := rl.local[clientID]
	if !ok {
		every := rl.config.Window / time.Duration(rl.config.Limit)
		limiter = rate.NewLimiter(rate.Every(every), rl.config.Limit)
		rl.local[clientID] = limiter
	}
	rl.mu.Unlock()

	now := time.Now()
	allowed := limiter.AllowN(now, 1)
	remaining := int(limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	return allowed, remaining, now.Add(rl.config.Window)
}
