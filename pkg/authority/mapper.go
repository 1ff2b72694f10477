package authority

import (
	"fmt"
	"strings"
)

const (
	// ClaimRoles holds the array of application roles.
	ClaimRoles = "roles"
	// ClaimScope holds the space-delimited OAuth2 scopes.
	ClaimScope = "scope"

	scopeDelimiter = " "
)

// FromClaims maps verified token claims to an authority Set.
//
// Every entry of the roles claim becomes ROLE_<name>, followed by every
// space-separated token of the scope claim as SCOPE_<name>. Empty scope tokens
// are skipped. A missing or null claim contributes nothing; a claim of the
// wrong type yields *MalformedClaimError. The result is never nil.
func FromClaims(claims map[string]any) (Set, error) {
	roles, err := roleNames(claims[ClaimRoles])
	if err != nil {
		return nil, err
	}
	scopes, err := scopeNames(claims[ClaimScope])
	if err != nil {
		return nil, err
	}

	set := make(Set, 0, len(roles)+len(scopes))
	for _, r := range roles {
		set = append(set, Role(r))
	}
	for _, s := range scopes {
		set = append(set, ScopeOf(s))
	}
	return set, nil
}

func roleNames(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []string:
		for i, r := range v {
			if r == "" {
				return nil, &MalformedClaimError{Claim: ClaimRoles, Reason: fmt.Sprintf("empty role at index %d", i)}
			}
		}
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			r, ok := item.(string)
			if !ok {
				return nil, &MalformedClaimError{Claim: ClaimRoles, Reason: fmt.Sprintf("element %d is %T, want string", i, item)}
			}
			if r == "" {
				return nil, &MalformedClaimError{Claim: ClaimRoles, Reason: fmt.Sprintf("empty role at index %d", i)}
			}
			out = append(out, r)
		}
		return out, nil
	default:
		return nil, &MalformedClaimError{Claim: ClaimRoles, Reason: fmt.Sprintf("got %T, want array of strings", raw)}
	}
}

func scopeNames(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		parts := strings.Split(v, scopeDelimiter)
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	default:
		return nil, &MalformedClaimError{Claim: ClaimScope, Reason: fmt.Sprintf("got %T, want space-delimited string", raw)}
	}
}
