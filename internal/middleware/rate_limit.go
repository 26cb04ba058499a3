package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// limiterTTL is how long an idle client's bucket is kept.
const limiterTTL = time.Hour

// RateLimit gives every client IP its own token bucket of perSecond tokens
// per second and the given burst. Exhausted clients get 429.
//
// gin-limit-by-key keeps buckets in one package-level cache, so keys carry
// an id unique to this limiter.
func RateLimit(perSecond float64, burst int) gin.HandlerFunc {
	id := uuid.NewString()
	return limit.NewRateLimiter(
		func(c *gin.Context) string {
			return id + "|" + c.ClientIP()
		},
		func(c *gin.Context) (*rate.Limiter, time.Duration) {
			return rate.NewLimiter(rate.Limit(perSecond), burst), limiterTTL
		},
		func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
		},
	)
}
