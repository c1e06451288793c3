package preference

import "errors"

// Domain errors
var (
	// ErrNotFound - influencer has no saved policy
	ErrNotFound = errors.New("preference: not found")

	// ErrContentPreferencesRequired - content preferences must not be empty
	ErrContentPreferencesRequired = errors.New("preference: content preferences are required")

	// ErrInvalidBaseline - monetary baseline must be positive
	ErrInvalidBaseline = errors.New("preference: monetary baseline must be greater than 0")

	// ErrContentLengthRequired - content length must not be empty
	ErrContentLengthRequired = errors.New("preference: content length is required")

	// ErrFieldTooLong - a free-text field exceeds its limit
	ErrFieldTooLong = errors.New("preference: field too long")
)
