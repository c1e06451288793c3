package http

import (
	"collab-srv/internal/inquiry"
	"collab-srv/internal/middleware"
	"collab-srv/pkg/discord"
	"collab-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for inquiry HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      inquiry.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc inquiry.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
