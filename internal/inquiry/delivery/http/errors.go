package http

import (
	"errors"

	"collab-srv/internal/inquiry"
	pkgErrors "collab-srv/pkg/errors"
)

var (
	errInvalidBody           = pkgErrors.NewHTTPError(400, "Invalid request body")
	errInquiryNotFound       = pkgErrors.NewHTTPError(404, "Inquiry not found")
	errChatClosed            = pkgErrors.NewHTTPError(400, "This conversation has been closed")
	errInfluencerRequired    = pkgErrors.NewHTTPError(400, "Influencer is required")
	errInfluencerNotFound    = pkgErrors.NewHTTPError(404, "Influencer not found")
	errBusinessEmailRequired = pkgErrors.NewHTTPError(400, "Business email is required")
	errMessageRequired       = pkgErrors.NewHTTPError(400, "Message is required")
	errMessageTooLong        = pkgErrors.NewHTTPError(400, "Message too long")
	errInvalidPrice          = pkgErrors.NewHTTPError(400, "Price must be greater than 0")
	errInvalidStatus         = pkgErrors.NewHTTPError(400, "Invalid status")
	errNotOwner              = pkgErrors.NewHTTPError(403, "Forbidden")
	errAttachmentRequired    = pkgErrors.NewHTTPError(400, "Attachment file is required")
	errAttachmentTooLarge    = pkgErrors.NewHTTPError(400, "Attachment exceeds the maximum size")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, inquiry.ErrNotFound):
		return errInquiryNotFound
	case errors.Is(err, inquiry.ErrChatClosed):
		return errChatClosed
	case errors.Is(err, inquiry.ErrInfluencerRequired):
		return errInfluencerRequired
	case errors.Is(err, inquiry.ErrInfluencerNotFound):
		return errInfluencerNotFound
	case errors.Is(err, inquiry.ErrBusinessEmailRequired):
		return errBusinessEmailRequired
	case errors.Is(err, inquiry.ErrMessageRequired):
		return errMessageRequired
	case errors.Is(err, inquiry.ErrMessageTooLong):
		return errMessageTooLong
	case errors.Is(err, inquiry.ErrInvalidPrice):
		return errInvalidPrice
	case errors.Is(err, inquiry.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, inquiry.ErrNotOwner):
		return errNotOwner
	case errors.Is(err, inquiry.ErrAttachmentRequired):
		return errAttachmentRequired
	case errors.Is(err, inquiry.ErrAttachmentTooLarge):
		return errAttachmentTooLarge
	default:
		return err
	}
}
