package profile

// WhoAmIOutput describes the caller as seen by the API.
type WhoAmIOutput struct {
	FirstName string
	LastName  string
	// Authorities lists every granted authority, roles and scopes alike, in mapped order.
	Authorities []string
}
