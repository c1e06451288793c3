package http

import (
	"errors"

	"collab-srv/internal/preference"
	pkgErrors "collab-srv/pkg/errors"
)

var (
	errInvalidBody                = pkgErrors.NewHTTPError(400, "Invalid request body")
	errPreferenceNotFound         = pkgErrors.NewHTTPError(404, "Preferences not found")
	errContentPreferencesRequired = pkgErrors.NewHTTPError(400, "Content preferences are required")
	errInvalidBaseline            = pkgErrors.NewHTTPError(400, "Monetary baseline must be greater than 0")
	errContentLengthRequired      = pkgErrors.NewHTTPError(400, "Content length is required")
	errFieldTooLong               = pkgErrors.NewHTTPError(400, "Field too long")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, preference.ErrNotFound):
		return errPreferenceNotFound
	case errors.Is(err, preference.ErrContentPreferencesRequired):
		return errContentPreferencesRequired
	case errors.Is(err, preference.ErrInvalidBaseline):
		return errInvalidBaseline
	case errors.Is(err, preference.ErrContentLengthRequired):
		return errContentLengthRequired
	case errors.Is(err, preference.ErrFieldTooLong):
		return errFieldTooLong
	default:
		return err
	}
}
