package http

import (
	"collab-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/inquiries")
	{
		// Public surface. The inquiry id is the capability.
		api.POST("", mw.RateLimit(), h.SubmitInquiry)
		api.GET("/:id", h.GetInquiry)
		api.GET("/:id/messages", h.ListMessages)
		api.POST("/:id/messages", mw.RateLimit(), h.PostMessage)
		api.POST("/:id/close", h.CloseChat)

		// Influencer surface.
		api.GET("", mw.Auth(), h.ListInquiries)
		api.PATCH("/:id/status", mw.Auth(), h.SetStatus)
		api.DELETE("/:id", mw.Auth(), h.DeleteInquiry)
	}

	r.POST("/api/attachments", mw.RateLimit(), h.UploadAttachment)
}
