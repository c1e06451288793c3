package usecase

import (
	"context"

	"collab-srv/internal/agent/prompt"
	"collab-srv/internal/inquiry"
	"collab-srv/internal/model"
	"collab-srv/internal/preference"
	"collab-srv/pkg/locale"
)

// newFacts - Inquiry form fields the agent prompts are built from
func newFacts(inq model.Inquiry) prompt.Facts {
	return prompt.Facts{
		BusinessEmail: inq.BusinessEmail,
		Message:       inq.Message,
		Price:         inq.Price,
		CompanyInfo:   inq.CompanyInfo,
	}
}

// agentContext - Resolve the influencer's policy and agent language. Both
// degrade rather than fail: a missing policy yields the default, an
// unreadable user yields the default language.
func (uc *implUseCase) agentContext(ctx context.Context, influencerID string) (model.Preference, string) {
	pref, err := uc.prefUC.Resolve(ctx, influencerID)
	if err != nil {
		uc.l.Warnf(ctx, "inquiry.usecase.agentContext: policy resolve failed, using default: %v", err)
		pref = preference.Default(influencerID)
	}

	lang := locale.DefaultLang
	if influencer, err := uc.userUC.GetByID(ctx, influencerID); err == nil {
		lang = locale.ParseLang(influencer.LanguagePreference)
	} else {
		uc.l.Warnf(ctx, "inquiry.usecase.agentContext: influencer lookup failed, using default language: %v", err)
	}

	return pref, lang
}

func newInquiryOutput(inq model.Inquiry) inquiry.InquiryOutput {
	return inquiry.InquiryOutput{
		ID:               inq.ID,
		InfluencerID:     inq.InfluencerID,
		BusinessEmail:    inq.BusinessEmail,
		Message:          inq.Message,
		Price:            inq.Price,
		CompanyInfo:      inq.CompanyInfo,
		AttachmentURL:    inq.AttachmentURL,
		Status:           inq.Status,
		ChatActive:       inq.ChatActive,
		AIResponse:       inq.AIResponse,
		AIRecommendation: inq.AIRecommendation,
		CreatedAt:        inq.CreatedAt,
		UpdatedAt:        inq.UpdatedAt,
	}
}

func newMessageOutput(msg model.Message) inquiry.MessageOutput {
	return inquiry.MessageOutput{
		ID:        msg.ID,
		InquiryID: msg.InquiryID,
		Role:      msg.Role,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}
