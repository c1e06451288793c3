package middleware

import (
	"collab-srv/pkg/locale"

	"github.com/gin-gonic/gin"
)

// Locale - Attach the request language from the lang header
func (m *middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := locale.ParseLang(c.GetHeader("lang"))
		ctx := locale.SetLocaleToContext(c.Request.Context(), lang)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
