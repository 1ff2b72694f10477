package scope

import (
	"context"

	"bank-api/internal/model"
	"bank-api/pkg/authority"
)

// SetScopeToContext attaches the resolved principal to ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, ScopeCtxKey{}, sc)
}

// GetScopeFromContext returns the principal attached by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(ScopeCtxKey{}).(model.Scope)
	return sc, ok
}

// NewScope builds the request principal from verified claims and their mapped authorities.
func NewScope(claims Claims, authorities authority.Set) model.Scope {
	return model.Scope{
		UserID:      claims.Subject(),
		FirstName:   claims.String(claimGivenName),
		LastName:    claims.String(claimFamilyName),
		Claims:      claims,
		Authorities: authorities,
	}
}
