package http

import (
	"net/http"

	"bank-api/internal/account"
	pkgErrors "bank-api/pkg/errors"
)

var (
	errWrongAccountHolder   = pkgErrors.NewHTTPError(140001, "Account does not belong to the authenticated holder", http.StatusForbidden)
	errInvalidAccountNumber = pkgErrors.NewHTTPError(140002, "Invalid account number", http.StatusBadRequest)
)

// mapError converts domain errors. Anything unknown is returned as is and
// rendered as a 500.
func (h *handler) mapError(err error) error {
	switch err {
	case account.ErrWrongAccountHolder:
		return errWrongAccountHolder
	case account.ErrInvalidAccountNumber:
		return errInvalidAccountNumber
	}
	return err
}
