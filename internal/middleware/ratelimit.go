package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oretina/assettrack/pkg/cache"
)

// RateLimit enforces the per-client request budget before any handler runs.
// The counter is advisory; if it cannot be consulted the request proceeds.
func RateLimit(limiter cache.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Printf("rate limiter unavailable, failing open: %v", err)
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
