package http

import (
	"net/http"
	"time"
)

// ClientConfig holds configuration for the HTTP client.
// Retries of 0 means a single attempt with no retry.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

// clientImpl implements IClient.
type clientImpl struct {
	client *http.Client
	config ClientConfig
}
