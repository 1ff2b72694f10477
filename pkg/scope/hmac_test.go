package scope

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewManager(t *testing.T) {
	_, err := NewManager("short", "", "")
	require.ErrorIs(t, err, ErrSecretTooShort)

	m, err := NewManager(testSecret, "", "")
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestManager_RoundTrip(t *testing.T) {
	m, err := NewManager(testSecret, "https://issuer.test", "bank-api")
	require.NoError(t, err)

	token, err := m.CreateToken(TokenRequest{
		Subject:    "alice",
		GivenName:  "Alice",
		FamilyName: "Doe",
		Roles:      []string{"customer"},
		Scopes:     []string{"accounts:list", "accounts:details"},
	})
	require.NoError(t, err)

	claims, err := m.Verify(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, "alice", claims.Subject())
	assert.Equal(t, "Alice", claims.String("given_name"))
	assert.Equal(t, "Doe", claims.String("family_name"))
	assert.Equal(t, []any{"customer"}, claims["roles"])
	assert.Equal(t, "accounts:list accounts:details", claims["scope"])
	assert.NotEmpty(t, claims["jti"])
}

func TestManager_Verify(t *testing.T) {
	m, err := NewManager(testSecret, "", "bank-api")
	require.NoError(t, err)

	sign := func(secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}
	future := time.Now().Add(time.Hour).Unix()

	tcs := map[string]struct {
		token   string
		wantErr error
	}{
		"empty": {
			token:   "",
			wantErr: ErrMissingToken,
		},
		"garbage": {
			token:   "not-a-jwt",
			wantErr: ErrInvalidToken,
		},
		"expired": {
			token:   sign(testSecret, jwt.SigningMethodHS256, jwt.MapClaims{"sub": "a", "aud": "bank-api", "exp": time.Now().Add(-time.Hour).Unix()}),
			wantErr: ErrInvalidToken,
		},
		"no exp": {
			token:   sign(testSecret, jwt.SigningMethodHS256, jwt.MapClaims{"sub": "a", "aud": "bank-api"}),
			wantErr: ErrInvalidToken,
		},
		"wrong secret": {
			token:   sign("ffffffffffffffffffffffffffffffff", jwt.SigningMethodHS256, jwt.MapClaims{"sub": "a", "aud": "bank-api", "exp": future}),
			wantErr: ErrInvalidToken,
		},
		"wrong algorithm": {
			token:   sign(testSecret, jwt.SigningMethodHS512, jwt.MapClaims{"sub": "a", "aud": "bank-api", "exp": future}),
			wantErr: ErrInvalidToken,
		},
		"wrong audience": {
			token:   sign(testSecret, jwt.SigningMethodHS256, jwt.MapClaims{"sub": "a", "aud": "other", "exp": future}),
			wantErr: ErrInvalidToken,
		},
		"valid": {
			token: sign(testSecret, jwt.SigningMethodHS256, jwt.MapClaims{"sub": "a", "aud": "bank-api", "exp": future}),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			claims, err := m.Verify(context.Background(), tc.token)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "a", claims.Subject())
		})
	}
}
