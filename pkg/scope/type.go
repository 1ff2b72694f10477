package scope

import (
	"net/http"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwk"
)

// Claims is the verified claim set of a bearer token.
type Claims map[string]any

// Subject returns the "sub" claim, or "" when absent.
func (c Claims) Subject() string {
	return c.String(claimSubject)
}

// String returns a string claim, or "" when absent or not a string.
func (c Claims) String(name string) string {
	v, _ := c[name].(string)
	return v
}

// TokenRequest describes a token minted by Manager.CreateToken.
type TokenRequest struct {
	Subject    string
	GivenName  string
	FamilyName string
	Roles      []string
	Scopes     []string
	Issuer     string
	Audience   string
	// TTL defaults to TokenExpirationDuration.
	TTL time.Duration
}

// JWKSConfig configures a JWKS-backed verifier.
type JWKSConfig struct {
	URL      string
	Issuer   string
	Audience string
	// HTTPClient fetches the key set. http.DefaultClient when nil.
	HTTPClient *http.Client
	// MinRefreshInterval bounds refetches on an unknown key id.
	// DefaultJWKSRefreshInterval when zero.
	MinRefreshInterval time.Duration
}

type hmacManager struct {
	secretKey []byte
	issuer    string
	audience  string
}

type jwksVerifier struct {
	url      string
	issuer   string
	audience string
	cache    *jwk.Cache

	registerMu sync.Mutex
	registered bool

	refreshMu          sync.Mutex
	lastRefresh        time.Time
	minRefreshInterval time.Duration
	now                func() time.Time
}

// ScopeCtxKey is the context key of the request principal.
type ScopeCtxKey struct{}
