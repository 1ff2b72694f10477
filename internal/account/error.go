package account

import "errors"

var (
	// ErrWrongAccountHolder is returned when the account does not belong to the caller.
	ErrWrongAccountHolder   = errors.New("wrong account holder")
	ErrInvalidAccountNumber = errors.New("invalid account number")
)
