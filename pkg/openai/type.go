package openai

import pkghttp "collab-srv/pkg/http"

// OpenAIConfig holds the configuration for the OpenAI client.
type OpenAIConfig struct {
	APIKey string
	Model  string
}

// openaiImpl implements IOpenAI using the OpenAI chat completions API.
type openaiImpl struct {
	apiKey     string
	model      string
	httpClient pkghttp.IClient
}

// Message is a single chat message in a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompleteOptions tunes a single completion call.
type CompleteOptions struct {
	Temperature float64
	MaxTokens   int
}

// Request defines the request body for the chat completions API.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// Response defines the response body from the chat completions API.
type Response struct {
	ID      string   `json:"id"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice represents a generated candidate.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Usage represents token usage.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
