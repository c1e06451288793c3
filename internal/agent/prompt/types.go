package prompt

import (
	"fmt"
	"strings"

	"collab-srv/internal/model"
	"collab-srv/pkg/locale"
)

// Facts are the structured fields of the original inquiry form. They are
// injected into every prompt so the agent never re-asks what the form already
// answered.
type Facts struct {
	BusinessEmail string
	Message       string
	Price         *int
	CompanyInfo   string
}

// Language directives inserted under the LANGUAGE REQUIREMENT heading of each
// system prompt.
const (
	directiveEN = "Respond in natural, conversational English. Avoid other languages unless you are quoting the business."
	directiveZH = "请使用自然、专业的简体中文回复，除非引用品牌方的原话，请不要使用英文。"
)

func directive(lang string) string {
	if lang == locale.ZH {
		return directiveZH
	}
	return directiveEN
}

// buildFactsBlock - Render the inquiry form fields. Kept in English for every
// language; the directives only govern the reply.
func buildFactsBlock(facts Facts) string {
	var b strings.Builder
	b.WriteString("From: " + facts.BusinessEmail + "\n")
	if facts.CompanyInfo != "" {
		b.WriteString("Company: " + facts.CompanyInfo + "\n")
	}
	if facts.Price != nil && *facts.Price > 0 {
		b.WriteString(fmt.Sprintf("Offered Budget: $%d\n", *facts.Price))
	} else {
		b.WriteString("Budget: Not specified\n")
	}
	return b.String()
}

// buildPreferencesBlockEN - Influencer policy section, English prompts
func buildPreferencesBlockEN(pref model.Preference) string {
	var b strings.Builder
	b.WriteString("Influencer's Preferences:\n")
	b.WriteString("- Content Preferences: " + pref.ContentPreferences + "\n")
	b.WriteString(fmt.Sprintf("- Minimum Rate: $%d\n", pref.MonetaryBaseline))
	b.WriteString("- Preferred Content Length: " + pref.ContentLength + "\n")
	if pref.AdditionalGuidelines != "" {
		b.WriteString("- Additional Guidelines: " + pref.AdditionalGuidelines + "\n")
	}
	return b.String()
}

// buildPreferencesBlockZH - Influencer policy section, Chinese prompts
func buildPreferencesBlockZH(pref model.Preference) string {
	var b strings.Builder
	b.WriteString("达人偏好：\n")
	b.WriteString("- 内容偏好：" + pref.ContentPreferences + "\n")
	b.WriteString(fmt.Sprintf("- 合作最低报价：$%d\n", pref.MonetaryBaseline))
	b.WriteString("- 偏好内容时长：" + pref.ContentLength + "\n")
	if pref.AdditionalGuidelines != "" {
		b.WriteString("- 其他补充说明：" + pref.AdditionalGuidelines + "\n")
	}
	return b.String()
}
