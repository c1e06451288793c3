package http

import (
	"collab-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/preferences")
	api.Use(mw.Auth())
	{
		api.GET("", h.GetPreference)
		api.POST("", h.UpsertPreference)
	}
}
