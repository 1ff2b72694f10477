package scope

import "context"

// Verifier validates a bearer token and returns its claims.
// Implementations are safe for concurrent use.
type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// Manager is a Verifier that can also mint tokens with the same key.
type Manager interface {
	Verifier
	CreateToken(req TokenRequest) (string, error)
}
