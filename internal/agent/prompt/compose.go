// Package prompt composes the negotiation agent's LLM prompts. It is pure:
// no storage, no network, no clock. Each supported language carries its own
// hand-authored templates; adding a language means adding one file.
package prompt

import (
	"strings"

	"collab-srv/internal/model"
	"collab-srv/pkg/locale"
	"collab-srv/pkg/openai"
)

// ComposeFirstResponse - Prompt for the agent's opening reply to a new inquiry
func ComposeFirstResponse(lang string, pref model.Preference, facts Facts) (string, []openai.Message) {
	var system string
	if lang == locale.ZH {
		system = buildFirstResponseSystemZH(pref)
	} else {
		system = buildFirstResponseSystemEN(pref)
	}

	var b strings.Builder
	b.WriteString("Business Inquiry:\n")
	b.WriteString(buildFactsBlock(facts))
	b.WriteString("\nMessage:\n")
	b.WriteString(facts.Message)
	b.WriteString("\n\nGenerate your first response to start the conversation and negotiation.")

	return system, []openai.Message{
		{Role: openai.RoleUser, Content: b.String()},
	}
}

// ComposeChatTurn - Prompt for a follow-up turn. Inquiry facts are prepended
// as a context message so the agent never re-asks answered questions; the
// full ordered history follows, system rows excluded.
func ComposeChatTurn(lang string, pref model.Preference, facts Facts, history []model.Message) (string, []openai.Message) {
	var system string
	if lang == locale.ZH {
		system = buildChatSystemZH(pref)
	} else {
		system = buildChatSystemEN(pref)
	}

	var b strings.Builder
	b.WriteString("Initial inquiry details:\n")
	b.WriteString(buildFactsBlock(facts))
	b.WriteString("Message: ")
	b.WriteString(facts.Message)

	messages := []openai.Message{
		{Role: openai.RoleSystem, Content: b.String()},
	}
	for _, msg := range history {
		if msg.Role == model.MessageRoleSystem {
			continue
		}
		messages = append(messages, openai.Message{Role: msg.Role, Content: msg.Content})
	}

	return system, messages
}

// ComposeRecommendation - Prompt for the closing verdict over the full
// transcript.
func ComposeRecommendation(lang string, pref model.Preference, facts Facts, history []model.Message) (string, []openai.Message) {
	system := buildRecommendationSystem(lang, pref)

	var b strings.Builder
	b.WriteString("Initial inquiry:\n")
	b.WriteString(buildFactsBlock(facts))
	b.WriteString("Message: ")
	b.WriteString(facts.Message)
	b.WriteString("\n\nConversation history:\n")
	b.WriteString(buildTranscriptBlock(history))
	b.WriteString("\n\nBased on this conversation, what is your recommendation?")

	return system, []openai.Message{
		{Role: openai.RoleUser, Content: b.String()},
	}
}

// buildTranscriptBlock - Render the history as a labeled transcript
func buildTranscriptBlock(history []model.Message) string {
	parts := make([]string, 0, len(history))
	for _, msg := range history {
		if msg.Role == model.MessageRoleSystem {
			continue
		}
		label := "AI Agent"
		if msg.Role == model.MessageRoleUser {
			label = "Business"
		}
		parts = append(parts, label+": "+msg.Content)
	}
	return strings.Join(parts, "\n\n")
}
