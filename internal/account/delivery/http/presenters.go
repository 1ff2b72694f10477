package http

import (
	"strings"

	"bank-api/internal/account"
	"bank-api/internal/model"
)

type detailReq struct {
	AccountNumber string `uri:"accountNumber"`
}

func (r detailReq) validate() error {
	if strings.TrimSpace(r.AccountNumber) == "" {
		return account.ErrInvalidAccountNumber
	}
	return nil
}

type accountResp struct {
	AccountNumber string `json:"accountNumber" example:"12345"`
}

func (h *handler) newAccountResp(a model.Account) accountResp {
	return accountResp{AccountNumber: a.AccountNumber}
}

func (h *handler) newListResp(as []model.Account) []accountResp {
	resp := make([]accountResp, 0, len(as))
	for _, a := range as {
		resp = append(resp, h.newAccountResp(a))
	}
	return resp
}
