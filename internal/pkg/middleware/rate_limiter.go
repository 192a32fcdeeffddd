package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/constants"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/logger"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // Key prefix for Redis
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
	// Identifier picks the bucket for a request; defaults to the client IP
	Identifier func(c echo.Context) string
}

// RateLimiterMiddleware creates a fixed-window limiter backed by Redis INCR.
// INCR and TTL run in one MULTI so a key left without expiry is detected and
// re-armed. Redis failures let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if config.RedisClient == nil || config.Limit <= 0 {
			return next
		}
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if config.Identifier != nil {
				if id := config.Identifier(c); id != "" {
					identifier = id
				}
			}

			key := fmt.Sprintf("%s:%s", config.Key, identifier)
			ctx, cancel := context.WithTimeout(c.Request().Context(), 100*time.Millisecond)
			defer cancel()

			var incr *redis.IntCmd
			var ttlCmd *redis.DurationCmd
			_, err := config.RedisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				incr = pipe.Incr(ctx, key)
				ttlCmd = pipe.TTL(ctx, key)
				return nil
			})
			if err != nil {
				logger.WarnCtx(ctx, "Rate limiter unavailable, allowing request",
					logger.String("key", key),
					logger.Err(err))
				return next(c)
			}

			// a window key without expiry would never reset, so (re)arm it on
			// every request that finds one; a failed EXPIRE is retried next time
			ttl := ttlCmd.Val()
			if ttl < 0 {
				ttl = config.Period
				if err := config.RedisClient.Expire(ctx, key, config.Period).Err(); err != nil {
					logger.WarnCtx(ctx, "Rate limiter failed to set window expiry",
						logger.String("key", key),
						logger.Err(err))
				}
			}

			count := int(incr.Val())
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))

			if count > config.Limit {
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				return utils.TooManyRequestsResponse(c, int64(ttl.Seconds()))
			}

			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(config.Limit-count))
			return next(c)
		}
	}
}

// DriverRateLimiter limits match lookups per driver id path parameter
func DriverRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         constants.KeyRateLimitDriver,
		Limit:       limit,
		Period:      period,
		Identifier: func(c echo.Context) string {
			return c.Param("driverID")
		},
	})
}
