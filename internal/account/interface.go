package account

import (
	"context"

	"bank-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope) ([]model.Account, error)
	Detail(ctx context.Context, sc model.Scope, accountNumber string) (model.Account, error)
}
