package scope

import "time"

const (
	// TokenExpirationDuration is the default lifetime of tokens minted by CreateToken.
	TokenExpirationDuration = time.Hour

	// MinSecretKeyLength is the shortest HS256 secret accepted.
	MinSecretKeyLength = 32

	jwksRegistrationTimeout = 5 * time.Second

	// DefaultJWKSRefreshInterval is the minimum gap between refetches forced by
	// an unknown key id.
	DefaultJWKSRefreshInterval = 30 * time.Second

	claimSubject    = "sub"
	claimGivenName  = "given_name"
	claimFamilyName = "family_name"
	claimRoles      = "roles"
	claimScope      = "scope"
)

// JWKSAlgorithms are the asymmetric signature algorithms accepted from a JWKS issuer.
var JWKSAlgorithms = []string{"RS256", "RS384", "RS512", "ES256", "ES384", "PS256"}
