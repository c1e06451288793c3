package openai

import (
	"context"
	"fmt"
	"time"

	pkghttp "collab-srv/pkg/http"
)

// IOpenAI defines the interface for OpenAI chat completions.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	Complete(ctx context.Context, messages []Message, opts CompleteOptions) (string, error)
}

// NewOpenAI creates a new OpenAI client. Model defaults to DefaultModel if
// empty. APIKey must be set. The client performs no retries: callers that
// need at-most-once semantics get exactly one upstream attempt per call.
func NewOpenAI(cfg OpenAIConfig) (IOpenAI, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	return &openaiImpl{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   60 * time.Second,
			Retries:   0,
			RetryWait: time.Second,
		}),
	}, nil
}
