package middleware

import (
	"strings"

	"bank-api/pkg/authority"
	"bank-api/pkg/log"
	"bank-api/pkg/response"
	"bank-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

const bearerScheme = "Bearer"

// Auth resolves the request principal from the bearer token.
// Requests without a valid token are rejected with 401 and a WWW-Authenticate challenge.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.l.Debugf(ctx, "internal.middleware.Auth: missing Authorization header | Path: %s", c.Request.URL.Path)
			m.metrics.authFailed(reasonMissing)
			m.unauthorized(c, "")
			return
		}

		scheme, token, _ := strings.Cut(authHeader, " ")
		if !strings.EqualFold(scheme, bearerScheme) {
			m.logSecurityEvent(ctx, SecurityEvent{Type: SecurityEventAuthenticationFailure, Path: c.Request.URL.Path, Reason: reasonScheme})
			m.metrics.authFailed(reasonScheme)
			m.unauthorized(c, "")
			return
		}

		token = strings.TrimSpace(token)
		if token == "" {
			m.logSecurityEvent(ctx, SecurityEvent{Type: SecurityEventAuthenticationFailure, Path: c.Request.URL.Path, Reason: reasonInvalid})
			m.metrics.authFailed(reasonInvalid)
			m.unauthorized(c, "empty bearer token")
			return
		}

		claims, err := m.verifier.Verify(ctx, token)
		if err != nil {
			m.l.Debugf(ctx, "internal.middleware.Auth: token verification failed: %v", err)
			m.logSecurityEvent(ctx, SecurityEvent{Type: SecurityEventAuthenticationFailure, Path: c.Request.URL.Path, Reason: reasonInvalid})
			m.metrics.authFailed(reasonInvalid)
			m.unauthorized(c, "the access token is invalid or expired")
			return
		}

		authorities, err := authority.FromClaims(claims)
		if err != nil {
			m.l.Debugf(ctx, "internal.middleware.Auth: %v", err)
			m.logSecurityEvent(ctx, SecurityEvent{Type: SecurityEventAuthenticationFailure, UserID: claims.Subject(), Path: c.Request.URL.Path, Reason: reasonClaims})
			m.metrics.authFailed(reasonClaims)
			m.unauthorized(c, "the access token carries malformed claims")
			return
		}

		sc := scope.NewScope(claims, authorities)
		ctx = scope.SetScopeToContext(ctx, sc)
		ctx = log.WithContext(ctx, m.l.With("user_id", sc.UserID))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func (m Middleware) unauthorized(c *gin.Context, description string) {
	var errFields []string
	if description != "" {
		errFields = append(errFields, `error="invalid_token"`, `error_description="`+escapeQuotes(description)+`"`)
	}
	c.Header("WWW-Authenticate", m.challenge(errFields...))
	response.Unauthorized(c)
	c.Abort()
}

// challenge builds an RFC 6750 bearer challenge, including the RFC 9728
// resource_metadata parameter when configured.
func (m Middleware) challenge(errFields ...string) string {
	var parts []string
	if m.cfg.Realm != "" {
		parts = append(parts, `realm="`+escapeQuotes(m.cfg.Realm)+`"`)
	}
	if m.cfg.ResourceMetadataURL != "" {
		parts = append(parts, `resource_metadata="`+escapeQuotes(m.cfg.ResourceMetadataURL)+`"`)
	}
	parts = append(parts, errFields...)

	if len(parts) == 0 {
		return bearerScheme
	}
	return bearerScheme + " " + strings.Join(parts, ", ")
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
