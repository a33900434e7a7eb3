package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/bizops/backend/internal/infrastructure/config"
	"github.com/bizops/backend/internal/infrastructure/logger"
	"github.com/bizops/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
	"go.uber.org/zap"
)

// RateLimitKeyPrefix namespaces limiter counters in redis
const RateLimitKeyPrefix = "http:ratelimit"

// NewRateLimiter builds the per-client limiter from the http.rate_limit_*
// settings. Counters live in redis when a client is given, so every
// replica shares one budget; otherwise they are kept in process memory.
func NewRateLimiter(cfg config.HTTPConfig, client *redis.Client) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimitFormatted())
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", cfg.RateLimitFormatted(), err)
	}
	return newLimiter(rate, client)
}

func newLimiter(rate limiter.Rate, client *redis.Client) (*limiter.Limiter, error) {
	if client == nil {
		return limiter.New(memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          RateLimitKeyPrefix,
			CleanUpInterval: limiter.DefaultCleanUpInterval,
		}), rate), nil
	}
	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix: RateLimitKeyPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
	}
	return limiter.New(store, rate), nil
}

// RateLimit limits requests per client IP. A nil limiter disables it.
func RateLimit(l *limiter.Limiter) gin.HandlerFunc {
	if l == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		ip := c.ClientIP()
		ctx := c.Request.Context()

		lctx, err := l.Get(ctx, ip)
		if err != nil {
			// fail open on store errors
			logger.FromContext(ctx).Error("Rate limit check failed",
				zap.String("ip", ip), zap.Error(err))
			c.Next()
			return
		}

		h := c.Writer.Header()
		h.Set("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		h.Set("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

		if lctx.Reached {
			logger.FromContext(ctx).Warn("Rate limit exceeded",
				zap.String("ip", ip),
				zap.Int64("limit", lctx.Limit))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeRateLimited,
				"Too many requests, please try again later",
				GetRequestID(c),
			))
			return
		}
		c.Next()
	}
}
