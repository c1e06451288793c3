package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"collab-srv/internal/inquiry"
	"collab-srv/internal/inquiry/repository"
	"collab-srv/internal/model"
	"collab-srv/internal/notification"
	"collab-srv/internal/user"
)

// notificationTimeout bounds the detached status-email send.
const notificationTimeout = 30 * time.Second

// Submit - Persist a new inquiry, generate and cache the agent's opening
// reply, and seed the transcript with it
func (uc *implUseCase) Submit(ctx context.Context, input inquiry.SubmitInput) (inquiry.InquiryOutput, error) {
	if err := uc.validateSubmitInput(ctx, &input); err != nil {
		return inquiry.InquiryOutput{}, err
	}

	inq, err := uc.repo.CreateInquiry(ctx, repository.CreateInquiryOptions{
		InfluencerID:  input.InfluencerID,
		BusinessEmail: input.BusinessEmail,
		Message:       input.Message,
		Price:         input.Price,
		CompanyInfo:   input.CompanyInfo,
		AttachmentURL: input.AttachmentURL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "inquiry.usecase.Submit: CreateInquiry failed: %v", err)
		return inquiry.InquiryOutput{}, err
	}

	pref, lang := uc.agentContext(ctx, inq.InfluencerID)
	aiResponse := uc.agentUC.GenerateFirstResponse(ctx, newFacts(inq), pref, lang)

	inq, err = uc.repo.UpdateInquiryAIResponse(ctx, inq.ID, aiResponse)
	if err != nil {
		uc.l.Errorf(ctx, "inquiry.usecase.Submit: UpdateInquiryAIResponse failed: %v", err)
		return inquiry.InquiryOutput{}, err
	}

	if _, err := uc.repo.CreateMessage(ctx, repository.CreateMessageOptions{
		InquiryID: inq.ID,
		Role:      model.MessageRoleAssistant,
		Content:   aiResponse,
	}); err != nil {
		uc.l.Errorf(ctx, "inquiry.usecase.Submit: CreateMessage failed: %v", err)
		return inquiry.InquiryOutput{}, err
	}

	uc.publishEvent(ctx, eventInquiryCreated, inq)

	return newInquiryOutput(inq), nil
}

// Get - Inquiry detail for the business chat page. Public by design: the id
// is the bearer capability.
func (uc *implUseCase) Get(ctx context.Context, id string) (inquiry.InquiryOutput, error) {
	inq, err := uc.getInquiry(ctx, id)
	if err != nil {
		return inquiry.InquiryOutput{}, err
	}
	return newInquiryOutput(inq), nil
}

// List - The influencer's inbox, newest first
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]inquiry.InquiryOutput, error) {
	inquiries, err := uc.repo.ListInquiriesByInfluencer(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "inquiry.usecase.List: ListInquiriesByInfluencer failed: %v", err)
		return nil, err
	}

	outputs := make([]inquiry.InquiryOutput, 0, len(inquiries))
	for _, inq := range inquiries {
		outputs = append(outputs, newInquiryOutput(inq))
	}
	return outputs, nil
}

// SetStatus - Persist the influencer's decision. Non-pending decisions notify
// the business by email in the background; the email never blocks or fails
// the status change.
func (uc *implUseCase) SetStatus(ctx context.Context, sc model.Scope, input inquiry.SetStatusInput) (inquiry.InquiryOutput, error) {
	if !model.IsValidInquiryStatus(input.Status) {
		return inquiry.InquiryOutput{}, inquiry.ErrInvalidStatus
	}
	if len(input.Note) > inquiry.MaxNoteLength {
		return inquiry.InquiryOutput{}, inquiry.ErrMessageTooLong
	}

	inq, err := uc.getOwnedInquiry(ctx, sc, input.InquiryID)
	if err != nil {
		return inquiry.InquiryOutput{}, err
	}

	inq, err = uc.repo.UpdateInquiryStatus(ctx, inq.ID, input.Status)
	if err != nil {
		uc.l.Errorf(ctx, "inquiry.usecase.SetStatus: UpdateInquiryStatus failed: %v", err)
		return inquiry.InquiryOutput{}, err
	}

	if input.Status != model.InquiryStatusPending {
		uc.dispatchStatusEmail(ctx, sc, inq, input.Note)
	}

	uc.publishEvent(ctx, eventInquiryStatusChanged, inq)

	return newInquiryOutput(inq), nil
}

// Delete - Hard delete by the owning influencer; messages cascade
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	inq, err := uc.getOwnedInquiry(ctx, sc, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteInquiry(ctx, inq.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return inquiry.ErrNotFound
		}
		uc.l.Errorf(ctx, "inquiry.usecase.Delete: DeleteInquiry failed: %v", err)
		return err
	}
	return nil
}

// dispatchStatusEmail - Fire the notification detached from the request.
// Failures are logged inside the dispatcher, never surfaced here.
func (uc *implUseCase) dispatchStatusEmail(ctx context.Context, sc model.Scope, inq model.Inquiry, note string) {
	influencerName := "The influencer"
	if influencer, err := uc.userUC.GetByID(ctx, sc.UserID); err == nil {
		influencerName = influencer.DisplayName()
	} else {
		uc.l.Warnf(ctx, "inquiry.usecase.dispatchStatusEmail: influencer lookup failed: %v", err)
	}

	// Detach from the request context so the response does not wait on the
	// email provider.
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
		defer cancel()

		_ = uc.notifUC.Dispatch(sendCtx, notification.DispatchInput{
			BusinessEmail:  inq.BusinessEmail,
			InfluencerName: influencerName,
			Status:         inq.Status,
			Note:           note,
		})
	}()
}

func (uc *implUseCase) validateSubmitInput(ctx context.Context, input *inquiry.SubmitInput) error {
	input.BusinessEmail = strings.TrimSpace(input.BusinessEmail)
	input.Message = strings.TrimSpace(input.Message)

	if input.InfluencerID == "" {
		return inquiry.ErrInfluencerRequired
	}
	if input.BusinessEmail == "" {
		return inquiry.ErrBusinessEmailRequired
	}
	if input.Message == "" {
		return inquiry.ErrMessageRequired
	}
	if len(input.Message) > inquiry.MaxMessageLength || len(input.CompanyInfo) > inquiry.MaxCompanyInfoLength {
		return inquiry.ErrMessageTooLong
	}
	if input.Price != nil && *input.Price <= 0 {
		return inquiry.ErrInvalidPrice
	}

	if _, err := uc.userUC.GetByID(ctx, input.InfluencerID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return inquiry.ErrInfluencerNotFound
		}
		uc.l.Errorf(ctx, "inquiry.usecase.validateSubmitInput: influencer lookup failed: %v", err)
		return err
	}
	return nil
}

// getInquiry - Load or map to the domain not-found error
func (uc *implUseCase) getInquiry(ctx context.Context, id string) (model.Inquiry, error) {
	if id == "" {
		return model.Inquiry{}, inquiry.ErrNotFound
	}

	inq, err := uc.repo.GetInquiryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Inquiry{}, inquiry.ErrNotFound
		}
		uc.l.Errorf(ctx, "inquiry.usecase.getInquiry: GetInquiryByID failed: %v", err)
		return model.Inquiry{}, err
	}
	return inq, nil
}

// getOwnedInquiry - Load and verify the caller is the inquiry's influencer
func (uc *implUseCase) getOwnedInquiry(ctx context.Context, sc model.Scope, id string) (model.Inquiry, error) {
	inq, err := uc.getInquiry(ctx, id)
	if err != nil {
		return model.Inquiry{}, err
	}
	if inq.InfluencerID != sc.UserID {
		return model.Inquiry{}, inquiry.ErrNotOwner
	}
	return inq, nil
}
