package scope

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// NewManager returns an HS256 Manager. iss and aud are checked on Verify and
// stamped by CreateToken when non-empty.
func NewManager(secretKey, issuer, audience string) (Manager, error) {
	if len(secretKey) < MinSecretKeyLength {
		return nil, fmt.Errorf("%w: need at least %d characters", ErrSecretTooShort, MinSecretKeyLength)
	}
	return &hmacManager{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		audience:  audience,
	}, nil
}

func (m *hmacManager) Verify(_ context.Context, token string) (Claims, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	keyFunc := func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secretKey, nil
	}

	claims := jwt.MapClaims{}
	if _, err := newParser([]string{jwt.SigningMethodHS256.Alg()}, m.issuer, m.audience).ParseWithClaims(token, claims, keyFunc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return Claims(claims), nil
}

func (m *hmacManager) CreateToken(req TokenRequest) (string, error) {
	ttl := req.TTL
	if ttl <= 0 {
		ttl = TokenExpirationDuration
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"jti":           uuid.NewString(),
		"iat":           now.Unix(),
		"nbf":           now.Unix(),
		"exp":           now.Add(ttl).Unix(),
		claimSubject:    req.Subject,
		claimGivenName:  req.GivenName,
		claimFamilyName: req.FamilyName,
	}
	if len(req.Roles) > 0 {
		claims[claimRoles] = req.Roles
	}
	if len(req.Scopes) > 0 {
		claims[claimScope] = strings.Join(req.Scopes, " ")
	}

	iss := req.Issuer
	if iss == "" {
		iss = m.issuer
	}
	if iss != "" {
		claims["iss"] = iss
	}
	aud := req.Audience
	if aud == "" {
		aud = m.audience
	}
	if aud != "" {
		claims["aud"] = aud
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
}

func newParser(methods []string, issuer, audience string) *jwt.Parser {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(methods),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	return jwt.NewParser(opts...)
}
