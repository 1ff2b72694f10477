package usecase

import (
	"context"
	"strings"

	"bank-api/internal/account"
	"bank-api/internal/model"
)

// sampleAccountNumbers is what every holder sees until a real ledger is wired in.
var sampleAccountNumbers = []string{"12345", "ABCDE"}

// wrongHolderSuffix marks account numbers that never belong to the caller.
const wrongHolderSuffix = "9"

func (uc *usecase) List(ctx context.Context, sc model.Scope) ([]model.Account, error) {
	accounts := make([]model.Account, 0, len(sampleAccountNumbers))
	for _, n := range sampleAccountNumbers {
		accounts = append(accounts, model.Account{AccountNumber: n})
	}

	uc.l.Debugf(ctx, "internal.account.usecase.List: holder=%s count=%d", sc.UserID, len(accounts))
	return accounts, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, accountNumber string) (model.Account, error) {
	if accountNumber == "" {
		return model.Account{}, account.ErrInvalidAccountNumber
	}

	if strings.HasSuffix(accountNumber, wrongHolderSuffix) {
		uc.l.Warnf(ctx, "internal.account.usecase.Detail: holder=%s account=%s: %v", sc.UserID, accountNumber, account.ErrWrongAccountHolder)
		return model.Account{}, account.ErrWrongAccountHolder
	}

	return model.Account{AccountNumber: accountNumber}, nil
}
