package http

import (
	"collab-srv/internal/middleware"
	"collab-srv/internal/preference"
	"collab-srv/pkg/discord"
	"collab-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for preference HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      preference.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc preference.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
