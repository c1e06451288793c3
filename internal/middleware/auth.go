package middleware

import (
	"strings"

	"collab-srv/pkg/response"
	"collab-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth - Verify the bearer token or auth cookie and attach the scope
func (m *middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtMgr.Verify(token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: verify failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := scope.SetScopeToContext(c.Request.Context(), scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// extractToken - Authorization header first, auth cookie as fallback
func (m *middleware) extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	if cookie, err := c.Cookie(m.cookie.Name); err == nil {
		return cookie
	}
	return ""
}
