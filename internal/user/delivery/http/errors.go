package http

import (
	"errors"

	"collab-srv/internal/user"
	pkgErrors "collab-srv/pkg/errors"
)

var (
	errInvalidBody         = pkgErrors.NewHTTPError(400, "Invalid request body")
	errEmailRequired       = pkgErrors.NewHTTPError(400, "Email is required")
	errPasswordTooShort    = pkgErrors.NewHTTPError(400, "Password must be at least 8 characters")
	errEmailTaken          = pkgErrors.NewHTTPError(409, "Email already registered")
	errInvalidCredentials  = pkgErrors.NewHTTPError(401, "Invalid email or password")
	errWrongPortal         = pkgErrors.NewHTTPError(403, "Please use the correct login portal")
	errUserNotFound        = pkgErrors.NewHTTPError(404, "User not found")
	errInvalidUsername     = pkgErrors.NewHTTPError(400, "Username must be 3-30 characters and contain only lowercase letters, numbers, hyphens, and underscores")
	errUsernameTaken       = pkgErrors.NewHTTPError(409, "Username already taken")
	errUnsupportedLanguage = pkgErrors.NewHTTPError(400, "Unsupported language")
	errLanguageRequired    = pkgErrors.NewHTTPError(400, "Language is required")
	errUsernameRequired    = pkgErrors.NewHTTPError(400, "Username is required")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrEmailRequired):
		return errEmailRequired
	case errors.Is(err, user.ErrPasswordTooShort):
		return errPasswordTooShort
	case errors.Is(err, user.ErrEmailTaken):
		return errEmailTaken
	case errors.Is(err, user.ErrInvalidCredentials):
		return errInvalidCredentials
	case errors.Is(err, user.ErrWrongPortal):
		return errWrongPortal
	case errors.Is(err, user.ErrNotFound):
		return errUserNotFound
	case errors.Is(err, user.ErrInvalidUsername):
		return errInvalidUsername
	case errors.Is(err, user.ErrUsernameTaken):
		return errUsernameTaken
	case errors.Is(err, user.ErrUnsupportedLanguage):
		return errUnsupportedLanguage
	default:
		return err
	}
}
