package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/nkurunziza/erinda/internal/app/models/dto"
)

// RateLimiter enforces a fixed-window per-IP request budget backed by
// redis. Windows are one minute wide; the counter key expires with the
// window.
type RateLimiter struct {
	client    *redis.Client
	perMinute int
	logger    zerolog.Logger
}

// NewRateLimiter creates a redis-backed rate limiter
func NewRateLimiter(client *redis.Client, perMinute int, logger zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		client:    client,
		perMinute: perMinute,
		logger:    logger,
	}
}

// GinMiddleware returns the gin handler enforcing the limit. Redis
// outages fail open: the request proceeds and the error is logged.
func (l *RateLimiter) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}

		window := time.Now().Unix() / 60
		key := fmt.Sprintf("ratelimit:%s:%d", ip, window)

		count, err := l.client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			l.logger.Warn().Err(err).Msg("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if count == 1 {
			l.client.Expire(c.Request.Context(), key, time.Minute)
		}

		if count > int64(l.perMinute) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("Too many requests"))
			return
		}

		c.Next()
	}
}
