package http

import (
	"bank-api/internal/middleware"
	"bank-api/internal/profile"
	"bank-api/pkg/discord"
	pkgLog "bank-api/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
	WhoAmI(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc profile.UseCase
	d  discord.IDiscord
}

func New(l pkgLog.Logger, uc profile.UseCase, d discord.IDiscord) Handler {
	return &handler{
		l:  l,
		uc: uc,
		d:  d,
	}
}
