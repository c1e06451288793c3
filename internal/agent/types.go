package agent

import "collab-srv/pkg/locale"

// Sampling parameters per operation. Conversational turns run warmer than the
// closing verdict.
const (
	FirstResponseTemperature = 0.7
	FirstResponseMaxTokens   = 500

	ChatTurnTemperature = 0.7
	ChatTurnMaxTokens   = 300

	RecommendationTemperature = 0.5
	RecommendationMaxTokens   = 500
)

// Deterministic fallbacks returned when the upstream call fails or comes back
// empty. Hand-authored per language, not machine translated.
var fallbackFirstResponse = map[string]string{
	locale.EN: "Thanks for reaching out! What's your budget for this and what's the timeline?",
	locale.ZH: "感谢联系！可以告知一下预算和预计的时间安排吗？",
}

var fallbackChatTurn = map[string]string{
	locale.EN: "Could you elaborate on that?",
	locale.ZH: "可以再详细说明一下吗？",
}

var fallbackRecommendation = map[string]string{
	locale.EN: "**NEEDS INFO**\n\nUnable to generate a recommendation. Please review the conversation manually.\n\n**Key Details:**\n- Budget: Not discussed\n- Timeline: Not discussed\n- Deliverables: Not discussed",
	locale.ZH: "**需要更多信息**\n\n暂时无法生成建议，请手动查看对话内容。\n\n**关键信息：**\n- 预算：未讨论\n- 时间：未讨论\n- 交付物：未讨论",
}

// FallbackFirstResponse returns the localized opening-reply fallback.
func FallbackFirstResponse(lang string) string {
	if s, ok := fallbackFirstResponse[lang]; ok {
		return s
	}
	return fallbackFirstResponse[locale.EN]
}

// FallbackChatTurn returns the localized follow-up fallback.
func FallbackChatTurn(lang string) string {
	if s, ok := fallbackChatTurn[lang]; ok {
		return s
	}
	return fallbackChatTurn[locale.EN]
}

// FallbackRecommendation returns the localized NEEDS INFO verdict block.
func FallbackRecommendation(lang string) string {
	if s, ok := fallbackRecommendation[lang]; ok {
		return s
	}
	return fallbackRecommendation[locale.EN]
}
