package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/pkg/ratelimit"
	"taskflow/pkg/scope"
)

const rateLimitMessage = "Too many requests. Please try again later."

// LoginRateLimit limits login attempts per client IP.
func (m Middleware) LoginRateLimit() gin.HandlerFunc {
	return m.rateLimit(m.loginLimiter, func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// AIRateLimit limits AI calls per authenticated user. It must run after Auth.
func (m Middleware) AIRateLimit() gin.HandlerFunc {
	return m.rateLimit(m.aiLimiter, func(c *gin.Context) string {
		if sc, ok := scope.GetScopeFromContext(c.Request.Context()); ok {
			return sc.UserID
		}
		return c.ClientIP()
	})
}

func (m Middleware) rateLimit(limiter *ratelimit.Limiter, key func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		k := key(c)
		if !limiter.Allow(k) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded: path=%s key=%s", c.FullPath(), k)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": rateLimitMessage})
			return
		}
		c.Next()
	}
}
