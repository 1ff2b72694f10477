package middleware

import (
	"bank-api/pkg/authority"
	"bank-api/pkg/response"
	"bank-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Authorize evaluates rule against the principal resolved by Auth.
// A failing rule aborts with 401 when there is no principal and 403 otherwise;
// no later handler runs.
func (m Middleware) Authorize(rule authority.Rule) gin.HandlerFunc {
	name := rule.String()

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		// The zero Scope carries no authorities when Auth did not run.
		sc, _ := scope.GetScopeFromContext(ctx)

		if rule.Evaluate(sc.Authorities) {
			m.metrics.decided(name, decisionGranted)
			c.Next()
			return
		}

		if !sc.IsAuthenticated() {
			m.l.Debugf(ctx, "internal.middleware.Authorize: no principal for %s | Path: %s", name, c.Request.URL.Path)
			m.metrics.decided(name, decisionUnauthenticated)
			m.unauthorized(c, "")
			return
		}

		m.logSecurityEvent(ctx, SecurityEvent{
			Type:        SecurityEventAuthorizationFailure,
			Path:        c.Request.URL.Path,
			Reason:      decisionDenied,
			Rule:        name,
			Authorities: sc.Authorities.Strings(),
		})
		m.metrics.decided(name, decisionDenied)
		c.Header("WWW-Authenticate", m.challenge(`error="insufficient_scope"`))
		response.Forbidden(c)
		c.Abort()
	}
}
