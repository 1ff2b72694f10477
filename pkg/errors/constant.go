package errors

import "net/http"

const (
	// StatusUnauthorized is returned when no principal could be resolved.
	StatusUnauthorized = http.StatusUnauthorized
	// StatusForbidden is returned when the principal lacks a required authority.
	StatusForbidden = http.StatusForbidden
)

const (
	// MessageUnauthorized is the default message for 401.
	MessageUnauthorized = "Unauthorized"
	// MessageForbidden is the default message for 403.
	MessageForbidden = "Forbidden"
)
