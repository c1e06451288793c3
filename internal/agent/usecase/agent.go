package usecase

import (
	"context"

	"collab-srv/internal/agent"
	"collab-srv/internal/agent/prompt"
	"collab-srv/internal/model"
	"collab-srv/pkg/openai"
)

// GenerateFirstResponse - Opening reply for a freshly submitted inquiry
func (uc *implUseCase) GenerateFirstResponse(ctx context.Context, facts prompt.Facts, pref model.Preference, lang string) string {
	system, messages := prompt.ComposeFirstResponse(lang, pref, facts)

	out, err := uc.complete(ctx, system, messages, openai.CompleteOptions{
		Temperature: agent.FirstResponseTemperature,
		MaxTokens:   agent.FirstResponseMaxTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "agent.usecase.GenerateFirstResponse: degraded to fallback: %v", err)
		return agent.FallbackFirstResponse(lang)
	}
	return out
}

// GenerateChatTurn - Follow-up reply over the full ordered history
func (uc *implUseCase) GenerateChatTurn(ctx context.Context, history []model.Message, facts prompt.Facts, pref model.Preference, lang string) string {
	system, messages := prompt.ComposeChatTurn(lang, pref, facts, history)

	out, err := uc.complete(ctx, system, messages, openai.CompleteOptions{
		Temperature: agent.ChatTurnTemperature,
		MaxTokens:   agent.ChatTurnMaxTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "agent.usecase.GenerateChatTurn: degraded to fallback: %v", err)
		return agent.FallbackChatTurn(lang)
	}
	return out
}

// GenerateRecommendation - Closing verdict when the chat is closed
func (uc *implUseCase) GenerateRecommendation(ctx context.Context, history []model.Message, facts prompt.Facts, pref model.Preference, lang string) string {
	system, messages := prompt.ComposeRecommendation(lang, pref, facts, history)

	out, err := uc.complete(ctx, system, messages, openai.CompleteOptions{
		Temperature: agent.RecommendationTemperature,
		MaxTokens:   agent.RecommendationMaxTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "agent.usecase.GenerateRecommendation: degraded to fallback: %v", err)
		return agent.FallbackRecommendation(lang)
	}
	return out
}

// complete - Single upstream call, system prompt prepended. The client is
// configured with retries disabled so this is at most one request.
func (uc *implUseCase) complete(ctx context.Context, system string, messages []openai.Message, opts openai.CompleteOptions) (string, error) {
	all := make([]openai.Message, 0, len(messages)+1)
	all = append(all, openai.Message{Role: openai.RoleSystem, Content: system})
	all = append(all, messages...)

	return uc.llm.Complete(ctx, all, opts)
}
