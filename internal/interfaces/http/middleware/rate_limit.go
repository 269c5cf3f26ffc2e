package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "vortex-market.backend/internal/domain/errors"
	"vortex-market.backend/pkg/logger"
	"vortex-market.backend/pkg/metrics"
	"vortex-market.backend/pkg/redis"
)

var (
	redisIncr   = redis.Incr
	redisExpire = redis.Expire
)

// RateLimitMiddleware enforces a fixed-window request budget per subject
// and route. The counter is a single atomic INCR; the window TTL is
// attached on the first hit, so the window resets at discrete boundaries
// rather than sliding. Each route keeps its own counter: exhausting one
// endpoint's budget must not lock the subject out of the others. Keyed by
// user when authenticated, by client IP otherwise.
func RateLimitMiddleware(scope string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.ClientIP()
		if userID, ok := GetUserID(c); ok {
			subject = userID.String()
		}
		key := fmt.Sprintf("ratelimit:%s:%s:%s", scope, c.FullPath(), subject)

		ctx := c.Request.Context()
		count, err := redisIncr(ctx, key)
		if err != nil {
			// Counter store outage: let the request through rather than
			// taking the API down with it.
			logger.Warn(ctx, "rate limit counter unavailable",
				zap.String("scope", scope), zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			if err := redisExpire(ctx, key, window); err != nil {
				logger.Warn(ctx, "failed to set rate limit window",
					zap.String("scope", scope), zap.Error(err))
			}
		}

		if count > int64(limit) {
			metrics.RateLimitedRequests.WithLabelValues(scope).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    domainerrors.CodeRateLimited,
				"message": "Rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
