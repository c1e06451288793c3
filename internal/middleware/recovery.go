package middleware

import (
	"collab-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery - Convert panics into a generic 500 and report them
func (m *middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "middleware.Recovery: panic recovered: %v", recovered)
		response.PanicError(c, recovered, m.discord)
		c.Abort()
	})
}
