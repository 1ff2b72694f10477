package account

const (
	// RoleCustomer is the application role required for every account operation.
	RoleCustomer = "customer"

	ScopeList    = "accounts:list"
	ScopeDetails = "accounts:details"
)

// ScopeDescriptions documents the OAuth2 scopes this API understands.
var ScopeDescriptions = map[string]string{
	ScopeList:    "Right to list accounts",
	ScopeDetails: "Right to consult accounts details",
}
