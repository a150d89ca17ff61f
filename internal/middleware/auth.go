package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"taskflow/pkg/response"
	"taskflow/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth requires a valid bearer token and stores the caller scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		payload, err := m.scopeManager.Verify(strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, payload.Scope()))
		c.Next()
	}
}
