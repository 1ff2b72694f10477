package usecase

import (
	"context"

	"bank-api/internal/model"
	"bank-api/internal/profile"
)

func (uc *usecase) WhoAmI(ctx context.Context, sc model.Scope) (profile.WhoAmIOutput, error) {
	uc.l.Debugf(ctx, "internal.profile.usecase.WhoAmI: user=%s", sc.UserID)

	return profile.WhoAmIOutput{
		FirstName:   sc.FirstName,
		LastName:    sc.LastName,
		Authorities: sc.Authorities.Strings(),
	}, nil
}
