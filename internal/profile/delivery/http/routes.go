package http

import (
	"bank-api/internal/middleware"
	"bank-api/pkg/authority"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.GET("/whoami", mw.Auth(), mw.Authorize(authority.Authenticated()), h.WhoAmI)
}
