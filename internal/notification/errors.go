package notification

import "errors"

// Domain errors
var (
	// ErrUnknownStatus - status has no email template
	ErrUnknownStatus = errors.New("notification: unknown status")

	// ErrEmailRequired - recipient email must not be empty
	ErrEmailRequired = errors.New("notification: business email is required")
)
