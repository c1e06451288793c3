package http

import (
	"collab-srv/config"
	"collab-srv/internal/middleware"
	"collab-srv/internal/user"
	"collab-srv/pkg/discord"
	"collab-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for user HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      user.UseCase
	cookie  config.CookieConfig
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc user.UseCase, cookie config.CookieConfig, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, cookie: cookie, discord: discord}
}
