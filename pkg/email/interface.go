package email

import (
	"context"
	"fmt"
	"time"

	pkghttp "collab-srv/pkg/http"
)

// ISender defines the interface for outbound transactional email.
// Implementations are safe for concurrent use.
type ISender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// DefaultFromEmail is Resend's onboarding sender, usable without domain setup.
const DefaultFromEmail = "onboarding@resend.dev"

// NewResend creates a new Resend email sender. FromEmail defaults to
// DefaultFromEmail if empty. APIKey must be set.
func NewResend(cfg ResendConfig) (ISender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("email: Resend API key is required")
	}
	if cfg.FromEmail == "" {
		cfg.FromEmail = DefaultFromEmail
	}
	return &resendImpl{
		apiKey:    cfg.APIKey,
		fromEmail: cfg.FromEmail,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   15 * time.Second,
			Retries:   2,
			RetryWait: time.Second,
		}),
	}, nil
}
