package inquiry

import (
	"context"

	"collab-srv/internal/model"
)

// UseCase drives the inquiry lifecycle. Submit, PostMessage, Close, Get and
// ListMessages are public: possession of the inquiry id is the business
// side's only credential. List, SetStatus and Delete require the influencer's
// scope.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Submit(ctx context.Context, input SubmitInput) (InquiryOutput, error)
	Get(ctx context.Context, id string) (InquiryOutput, error)
	List(ctx context.Context, sc model.Scope) ([]InquiryOutput, error)
	ListMessages(ctx context.Context, inquiryID string) ([]MessageOutput, error)
	PostMessage(ctx context.Context, input PostMessageInput) (PostMessageOutput, error)
	Close(ctx context.Context, id string) (InquiryOutput, error)
	SetStatus(ctx context.Context, sc model.Scope, input SetStatusInput) (InquiryOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	UploadAttachment(ctx context.Context, input UploadAttachmentInput) (AttachmentOutput, error)
}
