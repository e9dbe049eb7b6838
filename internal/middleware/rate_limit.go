package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/brewfinder/backend/internal/types"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// Key prefix for Redis keys
	KeyPrefix string
}

// Counter increments a windowed counter and returns the new value
type Counter interface {
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

type redisCounter struct {
	client *redis.Client
}

// NewRedisCounter returns a Counter storing its keys in redis
func NewRedisCounter(client *redis.Client) Counter {
	return &redisCounter{client: client}
}

func (r *redisCounter) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := r.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// RateLimiter limits requests per client IP in fixed windows
type RateLimiter struct {
	counter Counter
	config  RateLimitConfig
	logger  *zap.Logger
	now     func() time.Time
}

// NewRateLimiter creates a new rate limiter instance
func NewRateLimiter(counter Counter, config RateLimitConfig, log *zap.Logger) *RateLimiter {
	if config.KeyPrefix == "" {
		config.KeyPrefix = "rate_limit:api"
	}
	return &RateLimiter{
		counter: counter,
		config:  config,
		logger:  log,
		now:     time.Now,
	}
}

// IsAllowed checks if a request from the given client is allowed
// Returns: allowed, remaining requests, reset time, error
func (rl *RateLimiter) IsAllowed(ctx context.Context, client string) (bool, int, time.Time, error) {
	windowStart := rl.now().Truncate(rl.config.Window)
	key := fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, client, windowStart.Unix())

	count, err := rl.counter.Incr(ctx, key, rl.config.Window)
	if err != nil {
		return false, 0, time.Time{}, err
	}

	remaining := rl.config.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return int(count) <= rl.config.Limit, remaining, windowStart.Add(rl.config.Window), nil
}

// Middleware returns a gin middleware enforcing the limit. Counter
// failures let the request through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, resetTime, err := rl.IsAllowed(c.Request.Context(), c.ClientIP())
		if err != nil {
			rl.logger.Warn("rate limit check failed",
				zap.String("request_id", requestid.Get(c)),
				zap.Error(err),
			)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			retryAfter := int(resetTime.Sub(rl.now()).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, types.NewErrorResponse(
				types.CodeRateLimited,
				fmt.Sprintf("You have exceeded the rate limit of %d requests per %v", rl.config.Limit, rl.config.Window),
				requestid.Get(c),
			))
			return
		}

		c.Next()
	}
}
