package authority

import "fmt"

// MalformedClaimError is returned when a claim used for authorities is present
// but has an unexpected shape.
type MalformedClaimError struct {
	Claim  string
	Reason string
}

func (e *MalformedClaimError) Error() string {
	return fmt.Sprintf("malformed %q claim: %s", e.Claim, e.Reason)
}
