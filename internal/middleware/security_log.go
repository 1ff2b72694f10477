package middleware

import "context"

// SecurityEventType classifies a rejected request.
type SecurityEventType string

const (
	SecurityEventAuthenticationFailure SecurityEventType = "authentication_failure"
	SecurityEventAuthorizationFailure  SecurityEventType = "authorization_failure"
)

// SecurityEvent is one rejected request, logged with structured fields.
type SecurityEvent struct {
	Type   SecurityEventType
	UserID string
	Path   string
	Reason string
	// Rule is the access rule that failed, for authorization failures.
	Rule        string
	Authorities []string
}

func (m Middleware) logSecurityEvent(ctx context.Context, e SecurityEvent) {
	l := m.l.With(
		"event", string(e.Type),
		"path", e.Path,
		"reason", e.Reason,
	)
	if e.UserID != "" {
		l = l.With("user_id", e.UserID)
	}
	if e.Rule != "" {
		l = l.With("rule", e.Rule, "authorities", e.Authorities)
	}
	l.Warnf(ctx, "SECURITY: %s", e.Type)
}
