package http

import (
	"bank-api/internal/account"
	"bank-api/internal/middleware"
	"bank-api/pkg/authority"

	"github.com/gin-gonic/gin"
)

var (
	listRule   = authority.All(authority.HasScope(account.ScopeList), authority.HasRole(account.RoleCustomer))
	detailRule = authority.All(authority.HasScope(account.ScopeDetails), authority.HasRole(account.RoleCustomer))
)

// RegisterRoutes mounts /accounts under r. Each route declares its own access rule.
func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	accounts := r.Group("/accounts", mw.Auth())
	accounts.GET("", mw.Authorize(listRule), h.List)
	accounts.GET("/:accountNumber", mw.Authorize(detailRule), h.Detail)
}
