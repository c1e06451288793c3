package user

import "errors"

// Domain errors
var (
	// ErrNotFound - user does not exist
	ErrNotFound = errors.New("user: not found")

	// ErrEmailRequired - email must not be empty
	ErrEmailRequired = errors.New("user: email is required")

	// ErrPasswordTooShort - password under the minimum length
	ErrPasswordTooShort = errors.New("user: password too short")

	// ErrEmailTaken - an account already exists for this email
	ErrEmailTaken = errors.New("user: email already registered")

	// ErrInvalidCredentials - email/password mismatch
	ErrInvalidCredentials = errors.New("user: invalid email or password")

	// ErrWrongPortal - user type does not match the login portal
	ErrWrongPortal = errors.New("user: wrong login portal")

	// ErrInvalidUsername - username fails the format rules
	ErrInvalidUsername = errors.New("user: invalid username")

	// ErrUsernameTaken - username belongs to another account
	ErrUsernameTaken = errors.New("user: username already taken")

	// ErrUnsupportedLanguage - language is not supported
	ErrUnsupportedLanguage = errors.New("user: unsupported language")
)
