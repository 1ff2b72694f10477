package profile

import (
	"context"

	"bank-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	WhoAmI(ctx context.Context, sc model.Scope) (WhoAmIOutput, error)
}
