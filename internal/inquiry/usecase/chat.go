package usecase

import (
	"context"
	"strings"

	"collab-srv/internal/inquiry"
	"collab-srv/internal/inquiry/repository"
	"collab-srv/internal/model"
)

// ListMessages - Full ordered transcript for the chat page
func (uc *implUseCase) ListMessages(ctx context.Context, inquiryID string) ([]inquiry.MessageOutput, error) {
	if _, err := uc.getInquiry(ctx, inquiryID); err != nil {
		return nil, err
	}

	messages, err := uc.repo.ListMessagesByInquiry(ctx, inquiryID)
	if err != nil {
		uc.l.Errorf(ctx, "inquiry.usecase.ListMessages: ListMessagesByInquiry failed: %v", err)
		return nil, err
	}

	outputs := make([]inquiry.MessageOutput, 0, len(messages))
	for _, msg := range messages {
		outputs = append(outputs, newMessageOutput(msg))
	}
	return outputs, nil
}

// PostMessage - Append a business turn and the agent's reply. Serialized per
// inquiry so concurrent turns never interleave history reads.
func (uc *implUseCase) PostMessage(ctx context.Context, input inquiry.PostMessageInput) (inquiry.PostMessageOutput, error) {
	input.Content = strings.TrimSpace(input.Content)
	if input.Content == "" {
		return inquiry.PostMessageOutput{}, inquiry.ErrMessageRequired
	}
	if len(input.Content) > inquiry.MaxMessageLength {
		return inquiry.PostMessageOutput{}, inquiry.ErrMessageTooLong
	}

	uc.chatMu.Lock(input.InquiryID)
	defer uc.chatMu.Unlock(input.InquiryID)

	inq, err := uc.getInquiry(ctx, input.InquiryID)
	if err != nil {
		return inquiry.PostMessageOutput{}, err
	}
	if !inq.ChatActive {
		return inquiry.PostMessageOutput{}, inquiry.ErrChatClosed
	}

	userMsg, err := uc.repo.CreateMessage(ctx, repository.CreateMessageOptions{
		InquiryID: inq.ID,
		Role:      model.MessageRoleUser,
		Content:   input.Content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "inquiry.usecase.PostMessage: CreateMessage(user) failed: %v", err)
		return inquiry.PostMessageOutput{}, err
	}

	history, err := uc.repo.ListMessagesByInquiry(ctx, inq.ID)
	if err != nil {
		uc.l.Errorf(ctx, "inquiry.usecase.PostMessage: ListMessagesByInquiry failed: %v", err)
		return inquiry.PostMessageOutput{}, err
	}

	pref, lang := uc.agentContext(ctx, inq.InfluencerID)
	aiContent := uc.agentUC.GenerateChatTurn(ctx, history, newFacts(inq), pref, lang)

	aiMsg, err := uc.repo.CreateMessage(ctx, repository.CreateMessageOptions{
		InquiryID: inq.ID,
		Role:      model.MessageRoleAssistant,
		Content:   aiContent,
	})
	if err != nil {
		uc.l.Errorf(ctx, "inquiry.usecase.PostMessage: CreateMessage(assistant) failed: %v", err)
		return inquiry.PostMessageOutput{}, err
	}

	return inquiry.PostMessageOutput{
		UserMessage: newMessageOutput(userMsg),
		AIMessage:   newMessageOutput(aiMsg),
	}, nil
}

// Close - Close the chat and write the closing recommendation exactly once.
// A second close is a conflict; the recommendation is never regenerated.
func (uc *implUseCase) Close(ctx context.Context, id string) (inquiry.InquiryOutput, error) {
	uc.chatMu.Lock(id)
	defer uc.chatMu.Unlock(id)

	inq, err := uc.getInquiry(ctx, id)
	if err != nil {
		return inquiry.InquiryOutput{}, err
	}
	if !inq.ChatActive {
		return inquiry.InquiryOutput{}, inquiry.ErrChatClosed
	}

	history, err := uc.repo.ListMessagesByInquiry(ctx, inq.ID)
	if err != nil {
		uc.l.Errorf(ctx, "inquiry.usecase.Close: ListMessagesByInquiry failed: %v", err)
		return inquiry.InquiryOutput{}, err
	}

	pref, lang := uc.agentContext(ctx, inq.InfluencerID)
	recommendation := uc.agentUC.GenerateRecommendation(ctx, history, newFacts(inq), pref, lang)

	inq, err = uc.repo.CloseInquiryChat(ctx, inq.ID, recommendation)
	if err != nil {
		uc.l.Errorf(ctx, "inquiry.usecase.Close: CloseInquiryChat failed: %v", err)
		return inquiry.InquiryOutput{}, err
	}

	uc.publishEvent(ctx, eventInquiryClosed, inq)

	return newInquiryOutput(inq), nil
}
