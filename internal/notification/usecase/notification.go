package usecase

import (
	"context"

	"collab-srv/internal/model"
	"collab-srv/internal/notification"
)

// Dispatch - Send the status decision email for a reviewed inquiry
func (uc *implUseCase) Dispatch(ctx context.Context, input notification.DispatchInput) error {
	if input.BusinessEmail == "" {
		return notification.ErrEmailRequired
	}

	var subject, body string
	switch input.Status {
	case model.InquiryStatusApproved:
		subject = subjectApproved
		body = buildApprovedBody(input.InfluencerName, input.Note)
	case model.InquiryStatusRejected:
		subject = subjectRejected
		body = buildRejectedBody(input.InfluencerName, input.Note)
	case model.InquiryStatusNeedsInfo:
		subject = subjectNeedsInfo
		body = buildNeedsInfoBody(input.InfluencerName, input.Note)
	default:
		return notification.ErrUnknownStatus
	}

	if err := uc.sender.Send(ctx, input.BusinessEmail, subject, body); err != nil {
		uc.l.Errorf(ctx, "notification.usecase.Dispatch: send failed for %s: %v", input.BusinessEmail, err)
		return err
	}

	uc.l.Infof(ctx, "notification.usecase.Dispatch: %s email sent to %s", input.Status, input.BusinessEmail)
	return nil
}
