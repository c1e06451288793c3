package agent

import (
	"context"

	"collab-srv/internal/agent/prompt"
	"collab-srv/internal/model"
)

// UseCase is the negotiation agent. Each operation makes at most one upstream
// LLM call; any failure degrades to a deterministic localized fallback and is
// logged, never surfaced to the caller.
//
//go:generate mockery --name UseCase
type UseCase interface {
	GenerateFirstResponse(ctx context.Context, facts prompt.Facts, pref model.Preference, lang string) string
	GenerateChatTurn(ctx context.Context, history []model.Message, facts prompt.Facts, pref model.Preference, lang string) string
	GenerateRecommendation(ctx context.Context, history []model.Message, facts prompt.Facts, pref model.Preference, lang string) string
}
