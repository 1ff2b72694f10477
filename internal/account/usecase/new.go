package usecase

import (
	"bank-api/internal/account"
	pkgLog "bank-api/pkg/log"
)

type usecase struct {
	l pkgLog.Logger
}

// New returns the account lookup backed by fixed sample data.
func New(l pkgLog.Logger) account.UseCase {
	return &usecase{
		l: l,
	}
}
