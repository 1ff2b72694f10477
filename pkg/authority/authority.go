// Package authority turns verified token claims into the authority strings
// used for access decisions, and evaluates rules over them.
package authority

import "strings"

// Kind is the namespace of an Authority.
type Kind string

const (
	KindRole  Kind = "ROLE"
	KindScope Kind = "SCOPE"
)

const (
	RolePrefix  = string(KindRole) + "_"
	ScopePrefix = string(KindScope) + "_"
)

// Authority is a prefixed grant such as ROLE_customer or SCOPE_accounts:list.
type Authority string

// Role returns the authority for an application role.
func Role(name string) Authority {
	return Authority(RolePrefix + name)
}

// ScopeOf returns the authority for an OAuth2 scope.
func ScopeOf(name string) Authority {
	return Authority(ScopePrefix + name)
}

// Kind reports which prefix a carries, or "" if it carries none.
func (a Authority) Kind() Kind {
	switch {
	case strings.HasPrefix(string(a), RolePrefix):
		return KindRole
	case strings.HasPrefix(string(a), ScopePrefix):
		return KindScope
	default:
		return ""
	}
}

// Name strips the prefix.
func (a Authority) Name() string {
	switch a.Kind() {
	case KindRole:
		return strings.TrimPrefix(string(a), RolePrefix)
	case KindScope:
		return strings.TrimPrefix(string(a), ScopePrefix)
	default:
		return string(a)
	}
}

func (a Authority) String() string {
	return string(a)
}

// Set is the ordered list of authorities granted to one request's principal.
// Duplicates are kept. A resolved principal always has a non-nil Set.
type Set []Authority

// Has reports whether a is in the set.
func (s Set) Has(a Authority) bool {
	for _, v := range s {
		if v == a {
			return true
		}
	}
	return false
}

// Strings returns the authorities as plain strings, in order.
func (s Set) Strings() []string {
	out := make([]string, 0, len(s))
	for _, a := range s {
		out = append(out, string(a))
	}
	return out
}

// Roles returns the role names (without prefix), in order.
func (s Set) Roles() []string {
	return s.names(KindRole)
}

// Scopes returns the scope names (without prefix), in order.
func (s Set) Scopes() []string {
	return s.names(KindScope)
}

func (s Set) names(kind Kind) []string {
	out := make([]string, 0, len(s))
	for _, a := range s {
		if a.Kind() == kind {
			out = append(out, a.Name())
		}
	}
	return out
}
