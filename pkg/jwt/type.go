package jwt

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Config holds the configuration for the JWT manager.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  []string
	TTL       time.Duration
}

// Payload is the identity carried inside a token.
type Payload struct {
	UserID   string
	Username string
	Email    string
	UserType string // influencer | business
}

// Manager issues and verifies HS256 tokens.
type Manager struct {
	secretKey []byte
	issuer    string
	audience  []string
	ttl       time.Duration
}

// claims is the JWT claim set used on the wire.
type claims struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	UserType string `json:"user_type,omitempty"`
	jwtlib.RegisteredClaims
}
