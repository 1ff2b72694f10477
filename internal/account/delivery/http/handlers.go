package http

import (
	"bank-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// List
// @Summary List accounts
// @Description Accounts of the authenticated holder. Requires role customer and scope accounts:list.
// @Tags Accounts
// @Produce json
// @Security bank_auth[accounts:list]
// @Success 200 {array} accountResp
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 403 {object} response.Resp "Forbidden"
// @Router /accounts [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	accounts, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.account.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err), h.d)
		return
	}

	response.Body(c, h.newListResp(accounts))
}

// Detail
// @Summary Account detail
// @Description One account of the authenticated holder. Requires role customer and scope accounts:details.
// @Tags Accounts
// @Produce json
// @Security bank_auth[accounts:details]
// @Param accountNumber path string true "Account number"
// @Success 200 {object} accountResp
// @Failure 400 {object} response.Resp "Invalid account number"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 403 {object} response.Resp "Forbidden or wrong account holder"
// @Router /accounts/{accountNumber} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDetailRequest(c)
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	a, err := h.uc.Detail(ctx, sc, req.AccountNumber)
	if err != nil {
		h.l.Warnf(ctx, "internal.account.delivery.http.Detail: %v", err)
		response.Error(c, h.mapError(err), h.d)
		return
	}

	response.Body(c, h.newAccountResp(a))
}
