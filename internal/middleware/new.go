package middleware

import (
	"bank-api/pkg/log"
	"bank-api/pkg/scope"
)

// Config carries the values advertised in WWW-Authenticate challenges.
type Config struct {
	// Realm is usually the token issuer.
	Realm string
	// ResourceMetadataURL points at the protected resource metadata document.
	ResourceMetadataURL string
}

type Middleware struct {
	l        log.Logger
	verifier scope.Verifier
	metrics  *Metrics
	cfg      Config
}

// New builds the middleware set. metrics may be nil.
func New(l log.Logger, verifier scope.Verifier, metrics *Metrics, cfg Config) Middleware {
	return Middleware{
		l:        l,
		verifier: verifier,
		metrics:  metrics,
		cfg:      cfg,
	}
}
