package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mentorhub/internal/infrastructure/ratelimit"
	"mentorhub/internal/shared/logger"
	"mentorhub/internal/shared/utils"
)

// RateLimit limits requests per client IP. A limiter failure (Redis down)
// lets the request through; the limiter is protection, not a gate.
func RateLimit(limiter *ratelimit.RedisRateLimiter, limit ratelimit.Limit, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP(), limit)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many requests, slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
