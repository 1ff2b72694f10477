package http

import (
	pkgErrors "bank-api/pkg/errors"
	"bank-api/pkg/response"
	"bank-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// WhoAmI
// @Summary Current user
// @Description Name of the authenticated user and every authority granted to the request.
// @Tags Profile
// @Produce json
// @Security bank_auth
// @Success 200 {object} whoAmIResp
// @Failure 401 {object} response.Resp "Unauthorized"
// @Router /whoami [GET]
func (h *handler) WhoAmI(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, pkgErrors.NewUnauthorizedHTTPError(), h.d)
		return
	}

	o, err := h.uc.WhoAmI(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.profile.delivery.http.WhoAmI: %v", err)
		response.Error(c, err, h.d)
		return
	}

	response.Body(c, h.newWhoAmIResp(o))
}
