package http

import (
	"bank-api/internal/model"
	pkgErrors "bank-api/pkg/errors"
	"bank-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (model.Scope, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		h.l.Warnf(ctx, "internal.account.delivery.http.processListRequest: no principal in context")
		return model.Scope{}, pkgErrors.NewUnauthorizedHTTPError()
	}

	return sc, nil
}

func (h *handler) processDetailRequest(c *gin.Context) (detailReq, model.Scope, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		h.l.Warnf(ctx, "internal.account.delivery.http.processDetailRequest: no principal in context")
		return detailReq{}, model.Scope{}, pkgErrors.NewUnauthorizedHTTPError()
	}

	var req detailReq
	if err := c.ShouldBindUri(&req); err != nil {
		h.l.Warnf(ctx, "internal.account.delivery.http.processDetailRequest: %v", err)
		return detailReq{}, model.Scope{}, errInvalidAccountNumber
	}

	if err := req.validate(); err != nil {
		h.l.Warnf(ctx, "internal.account.delivery.http.processDetailRequest: %v", err)
		return detailReq{}, model.Scope{}, h.mapError(err)
	}

	return req, sc, nil
}
