package middleware

import (
	"collab-srv/config"
	"collab-srv/pkg/discord"
	"collab-srv/pkg/jwt"
	"collab-srv/pkg/log"
	"collab-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

// Middleware - Interface for the HTTP middleware chain
type Middleware interface {
	Auth() gin.HandlerFunc
	Locale() gin.HandlerFunc
	RateLimit() gin.HandlerFunc
	Recovery() gin.HandlerFunc
	Cors() gin.HandlerFunc
}

type middleware struct {
	l         log.Logger
	jwtMgr    *jwt.Manager
	redis     redis.IRedis
	cookie    config.CookieConfig
	rateLimit config.RateLimitConfig
	discord   discord.IDiscord
}

// New - Factory
func New(
	l log.Logger,
	jwtMgr *jwt.Manager,
	rd redis.IRedis,
	cookie config.CookieConfig,
	rateLimit config.RateLimitConfig,
	discord discord.IDiscord,
) Middleware {
	return &middleware{
		l:         l,
		jwtMgr:    jwtMgr,
		redis:     rd,
		cookie:    cookie,
		rateLimit: rateLimit,
		discord:   discord,
	}
}
