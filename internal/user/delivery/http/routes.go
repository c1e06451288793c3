package http

import (
	"collab-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)

		authed := auth.Group("")
		authed.Use(mw.Auth())
		{
			authed.GET("/user", h.GetMe)
			authed.PATCH("/language", h.UpdateLanguage)
			authed.PATCH("/username", h.UpdateUsername)
		}
	}

	r.GET("/api/users/:username", h.GetProfile)
}
