package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken indicates the token failed signature or claim checks.
	ErrInvalidToken = errors.New("jwt: invalid token")
	// ErrTokenExpired indicates the token is past its expiry.
	ErrTokenExpired = errors.New("jwt: token expired")
)

// New creates a new JWT manager.
func New(cfg Config) (*Manager, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("jwt: secret key is required")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 8 * time.Hour
	}
	return &Manager{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       cfg.TTL,
	}, nil
}

// Issue signs a new token for the given payload.
func (m *Manager) Issue(p Payload) (string, error) {
	now := time.Now()
	c := claims{
		Username: p.Username,
		Email:    p.Email,
		UserType: p.UserType,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   p.UserID,
			Issuer:    m.issuer,
			Audience:  m.audience,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return token.SignedString(m.secretKey)
}

// Verify parses and validates a token, returning its payload.
func (m *Manager) Verify(tokenString string) (Payload, error) {
	var c claims
	token, err := jwtlib.ParseWithClaims(tokenString, &c, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("jwt: unexpected signing method %v", t.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Payload{}, ErrTokenExpired
		}
		return Payload{}, ErrInvalidToken
	}
	if !token.Valid {
		return Payload{}, ErrInvalidToken
	}
	return Payload{
		UserID:   c.Subject,
		Username: c.Username,
		Email:    c.Email,
		UserType: c.UserType,
	}, nil
}
