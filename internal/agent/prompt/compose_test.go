package prompt

import (
	"strings"
	"testing"

	"collab-srv/internal/model"
	"collab-srv/pkg/locale"
	"collab-srv/pkg/openai"
)

func testPreference() model.Preference {
	return model.Preference{
		UserID:               "inf-1",
		ContentPreferences:   "Tech reviews, no gambling",
		MonetaryBaseline:     800,
		ContentLength:        "60-90s",
		AdditionalGuidelines: "No weekend posting",
	}
}

func testFacts() Facts {
	price := 500
	return Facts{
		BusinessEmail: "brand@acme.test",
		Message:       "We want a product review video.",
		Price:         &price,
		CompanyInfo:   "Acme Corp",
	}
}

func TestComposeFirstResponse(t *testing.T) {
	t.Run("english template carries policy and counter guidance", func(t *testing.T) {
		system, messages := ComposeFirstResponse(locale.EN, testPreference(), testFacts())

		if !strings.Contains(system, "Minimum Rate: $800") {
			t.Errorf("system prompt missing minimum rate, got:\n%s", system)
		}
		if !strings.Contains(system, "Never reveal the influencer's minimum rate") {
			t.Error("system prompt missing the non-disclosure rule")
		}
		if !strings.Contains(system, "20-30% higher") {
			t.Error("system prompt missing the counter band")
		}
		if !strings.Contains(system, "No weekend posting") {
			t.Error("system prompt missing additional guidelines")
		}

		if len(messages) != 1 {
			t.Fatalf("expected 1 user message, got %d", len(messages))
		}
		if messages[0].Role != openai.RoleUser {
			t.Errorf("message role = %q, want %q", messages[0].Role, openai.RoleUser)
		}
		if !strings.Contains(messages[0].Content, "Offered Budget: $500") {
			t.Errorf("user message missing offered budget, got:\n%s", messages[0].Content)
		}
		if !strings.Contains(messages[0].Content, "We want a product review video.") {
			t.Error("user message missing the inquiry text")
		}
	})

	t.Run("chinese template selected for zh", func(t *testing.T) {
		system, _ := ComposeFirstResponse(locale.ZH, testPreference(), testFacts())

		if !strings.Contains(system, "合作最低报价：$800") {
			t.Errorf("expected Chinese preferences block, got:\n%s", system)
		}
		if strings.Contains(system, "Minimum Rate:") {
			t.Error("Chinese prompt must not carry the English preferences block")
		}
	})

	t.Run("unknown language falls back to english", func(t *testing.T) {
		system, _ := ComposeFirstResponse("fr", testPreference(), testFacts())
		if !strings.Contains(system, "Minimum Rate: $800") {
			t.Error("expected English template for unknown language")
		}
	})

	t.Run("missing budget rendered as not specified", func(t *testing.T) {
		facts := testFacts()
		facts.Price = nil

		_, messages := ComposeFirstResponse(locale.EN, testPreference(), facts)
		if !strings.Contains(messages[0].Content, "Budget: Not specified") {
			t.Errorf("expected unspecified budget line, got:\n%s", messages[0].Content)
		}
	})
}

func TestComposeChatTurn(t *testing.T) {
	history := []model.Message{
		{Role: model.MessageRoleAssistant, Content: "What's your budget?"},
		{Role: model.MessageRoleSystem, Content: "internal marker"},
		{Role: model.MessageRoleUser, Content: "Around $500."},
	}

	t.Run("history follows the context message, system rows excluded", func(t *testing.T) {
		_, messages := ComposeChatTurn(locale.EN, testPreference(), testFacts(), history)

		if len(messages) != 3 {
			t.Fatalf("expected context + 2 history messages, got %d", len(messages))
		}
		if messages[0].Role != openai.RoleSystem {
			t.Errorf("first message role = %q, want system context", messages[0].Role)
		}
		if !strings.Contains(messages[0].Content, "Initial inquiry details:") {
			t.Error("context message missing inquiry details header")
		}
		if messages[1].Content != "What's your budget?" || messages[2].Content != "Around $500." {
			t.Error("history order not preserved")
		}
		for _, m := range messages[1:] {
			if m.Content == "internal marker" {
				t.Error("system history row leaked into the prompt")
			}
		}
	})

	t.Run("system prompt keeps rate private", func(t *testing.T) {
		system, _ := ComposeChatTurn(locale.EN, testPreference(), testFacts(), history)
		if !strings.Contains(system, "Do not volunteer the minimum") {
			t.Error("chat prompt missing the non-disclosure rule")
		}
	})
}

func TestComposeRecommendation(t *testing.T) {
	history := []model.Message{
		{Role: model.MessageRoleAssistant, Content: "What's your budget?"},
		{Role: model.MessageRoleUser, Content: "We can do $900."},
	}

	_, messages := ComposeRecommendation(locale.EN, testPreference(), testFacts(), history)

	if len(messages) != 1 {
		t.Fatalf("expected a single user message, got %d", len(messages))
	}

	content := messages[0].Content
	if !strings.Contains(content, "AI Agent: What's your budget?") {
		t.Errorf("transcript missing agent label, got:\n%s", content)
	}
	if !strings.Contains(content, "Business: We can do $900.") {
		t.Errorf("transcript missing business label, got:\n%s", content)
	}
	if !strings.Contains(content, "what is your recommendation?") {
		t.Error("closing question missing")
	}
}
