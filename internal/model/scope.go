package model

import "bank-api/pkg/authority"

// Scope is the authenticated principal of a request.
type Scope struct {
	UserID      string
	FirstName   string
	LastName    string
	Claims      map[string]any
	Authorities authority.Set
}

// IsAuthenticated reports whether the scope was resolved from a verified token.
func (s Scope) IsAuthenticated() bool {
	return s.Authorities != nil
}
