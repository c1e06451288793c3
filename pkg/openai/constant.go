package openai

const (
	// BaseURL is the OpenAI API base URL.
	BaseURL = "https://api.openai.com/v1"
	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4o-mini"

	// RoleSystem is the system message role.
	RoleSystem = "system"
	// RoleUser is the user message role.
	RoleUser = "user"
	// RoleAssistant is the assistant message role.
	RoleAssistant = "assistant"
)
