package scope

import "errors"

var (
	// ErrMissingToken is returned when no bearer token was presented.
	ErrMissingToken = errors.New("missing token")
	// ErrInvalidToken is returned when a token is malformed, expired or fails signature checks.
	ErrInvalidToken = errors.New("invalid token")
	// ErrSecretTooShort is returned by NewManager for secrets under MinSecretKeyLength.
	ErrSecretTooShort = errors.New("secret key too short")
	// ErrJWKSURLRequired is returned by NewJWKSVerifier without a URL.
	ErrJWKSURLRequired = errors.New("jwks url is required")
)
