package scope

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/httprc/v3"
	"github.com/lestrrat-go/jwx/v3/jwk"
)

// NewJWKSVerifier returns a Verifier that checks signatures against the key set
// published at cfg.URL. Keys are cached and refreshed in the background until
// ctx is cancelled. The first fetch happens on the first Verify.
func NewJWKSVerifier(ctx context.Context, cfg JWKSConfig) (Verifier, error) {
	if cfg.URL == "" {
		return nil, ErrJWKSURLRequired
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	cache, err := jwk.NewCache(ctx, httprc.NewClient(httprc.WithHTTPClient(httpClient)))
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS cache: %w", err)
	}

	interval := cfg.MinRefreshInterval
	if interval <= 0 {
		interval = DefaultJWKSRefreshInterval
	}

	return &jwksVerifier{
		url:                cfg.URL,
		issuer:             cfg.Issuer,
		audience:           cfg.Audience,
		cache:              cache,
		minRefreshInterval: interval,
		now:                time.Now,
	}, nil
}

func (v *jwksVerifier) Verify(ctx context.Context, token string) (Claims, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	keyFunc := func(t *jwt.Token) (any, error) {
		return v.key(ctx, t)
	}

	claims := jwt.MapClaims{}
	if _, err := newParser(JWKSAlgorithms, v.issuer, v.audience).ParseWithClaims(token, claims, keyFunc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return Claims(claims), nil
}

// ensureRegistered registers the JWKS URL with the cache on first use.
// A failed registration is retried on the next call.
func (v *jwksVerifier) ensureRegistered(ctx context.Context) error {
	v.registerMu.Lock()
	defer v.registerMu.Unlock()

	if v.registered {
		return nil
	}

	regCtx, cancel := context.WithTimeout(ctx, jwksRegistrationTimeout)
	defer cancel()

	if err := v.cache.Register(regCtx, v.url); err != nil {
		return fmt.Errorf("failed to register JWKS url: %w", err)
	}
	v.registered = true
	return nil
}

func (v *jwksVerifier) key(ctx context.Context, t *jwt.Token) (any, error) {
	if err := v.ensureRegistered(ctx); err != nil {
		return nil, err
	}

	kid, ok := t.Header["kid"].(string)
	if !ok || kid == "" {
		return nil, fmt.Errorf("token header missing kid")
	}

	set, err := v.cache.Lookup(ctx, v.url)
	if err != nil {
		return nil, fmt.Errorf("failed to lookup JWKS: %w", err)
	}

	key, found := set.LookupKeyID(kid)
	if !found {
		if key, err = v.refreshedKey(ctx, kid); err != nil {
			return nil, err
		}
	}

	var raw any
	if err := jwk.Export(key, &raw); err != nil {
		return nil, fmt.Errorf("failed to export raw key: %w", err)
	}
	return raw, nil
}

// refreshedKey refetches the key set to pick up rotated keys. Refetches are
// serialized and at most one happens per minRefreshInterval; callers inside
// the window only see the cached set.
func (v *jwksVerifier) refreshedKey(ctx context.Context, kid string) (jwk.Key, error) {
	v.refreshMu.Lock()
	defer v.refreshMu.Unlock()

	var (
		set jwk.Set
		err error
	)
	if now := v.now(); v.lastRefresh.IsZero() || now.Sub(v.lastRefresh) >= v.minRefreshInterval {
		v.lastRefresh = now
		set, err = v.cache.Refresh(ctx, v.url)
		if err != nil {
			return nil, fmt.Errorf("failed to refresh JWKS: %w", err)
		}
	} else {
		// A concurrent caller may have refreshed while we waited on the lock.
		set, err = v.cache.Lookup(ctx, v.url)
		if err != nil {
			return nil, fmt.Errorf("failed to lookup JWKS: %w", err)
		}
	}

	key, found := set.LookupKeyID(kid)
	if !found {
		return nil, fmt.Errorf("key id %s not found in JWKS", kid)
	}
	return key, nil
}
