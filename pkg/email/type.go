package email

import pkghttp "collab-srv/pkg/http"

// ResendConfig holds the configuration for the Resend client.
type ResendConfig struct {
	APIKey    string
	FromEmail string
}

// resendImpl implements ISender using the Resend HTTP API.
type resendImpl struct {
	apiKey     string
	fromEmail  string
	httpClient pkghttp.IClient
}

// Request defines the request body for the Resend send-email API.
type Request struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Response defines the response body from the Resend send-email API.
type Response struct {
	ID string `json:"id"`
}
