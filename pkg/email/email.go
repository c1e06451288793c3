package email

import (
	"context"
	"fmt"
	"net/http"
)

// BaseURL is the Resend API base URL.
const BaseURL = "https://api.resend.com"

// Send delivers one HTML email through the Resend API.
func (r *resendImpl) Send(ctx context.Context, to, subject, htmlBody string) error {
	if to == "" {
		return fmt.Errorf("email: recipient is required")
	}

	req := Request{
		From:    r.fromEmail,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	}

	headers := map[string]string{
		"Authorization": "Bearer " + r.apiKey,
	}

	body, statusCode, err := r.httpClient.Post(ctx, BaseURL+"/emails", req, headers)
	if err != nil {
		return fmt.Errorf("failed to call Resend API: %w", err)
	}
	if statusCode != http.StatusOK {
		return fmt.Errorf("Resend API returned status: %d, body: %s", statusCode, string(body))
	}
	return nil
}
