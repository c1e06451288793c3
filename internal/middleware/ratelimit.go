package middleware

import (
	"fmt"
	"net/http"
	"time"

	"collab-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// RateLimit - Fixed window counter per client IP and path, backed by Redis.
// A broken Redis fails open so the public form stays reachable.
func (m *middleware) RateLimit() gin.HandlerFunc {
	window := time.Duration(m.rateLimit.WindowS) * time.Second

	return func(c *gin.Context) {
		if m.redis == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.ClientIP(), c.FullPath())
		count, err := m.redis.IncrWithTTL(c.Request.Context(), key, window)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: incr failed, failing open: %v", err)
			c.Next()
			return
		}

		if count > int64(m.rateLimit.Requests) {
			c.JSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests, please try again later",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
