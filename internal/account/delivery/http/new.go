package http

import (
	"bank-api/internal/account"
	"bank-api/internal/middleware"
	"bank-api/pkg/discord"
	pkgLog "bank-api/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
	List(c *gin.Context)
	Detail(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc account.UseCase
	d  discord.IDiscord
}

// New returns the account HTTP handler. d may be nil.
func New(l pkgLog.Logger, uc account.UseCase, d discord.IDiscord) Handler {
	return &handler{
		l:  l,
		uc: uc,
		d:  d,
	}
}
