package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Complete sends one chat completion request and returns the generated text.
func (o *openaiImpl) Complete(ctx context.Context, messages []Message, opts CompleteOptions) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("openai: at least one message is required")
	}

	req := Request{
		Model:       o.model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}

	url := fmt.Sprintf("%s/chat/completions", BaseURL)
	headers := map[string]string{
		"Authorization": "Bearer " + o.apiKey,
	}

	body, statusCode, err := o.httpClient.Post(ctx, url, req, headers)
	if err != nil {
		return "", fmt.Errorf("failed to call OpenAI API: %w", err)
	}

	if statusCode != http.StatusOK {
		return "", fmt.Errorf("OpenAI API returned status: %d, body: %s", statusCode, string(body))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal OpenAI response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("no content generated")
	}
	return content, nil
}
