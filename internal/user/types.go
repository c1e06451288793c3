package user

import (
	"regexp"
	"time"
)

const (
	MinPasswordLength = 8
	BcryptCost        = 10
)

// usernamePattern - 3-30 chars, lowercase letters, digits, hyphens, underscores
var usernamePattern = regexp.MustCompile(`^[a-z0-9_-]{3,30}$`)

// ValidUsername reports whether s satisfies the username format rules.
func ValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

type RegisterInput struct {
	Email    string
	Password string
	UserType string // optional, defaults to influencer
	Language string // optional, defaults to en
}

type LoginInput struct {
	Email    string
	Password string
	UserType string // optional portal check
}

type UserOutput struct {
	ID                 string
	Email              string
	Username           string
	FirstName          string
	LastName           string
	ProfileImageURL    string
	LanguagePreference string
	UserType           string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// AuthOutput carries the sanitized user plus the signed token for the cookie.
type AuthOutput struct {
	User  UserOutput
	Token string
}

// ProfileOutput is the public subset rendered on the inquiry form page.
type ProfileOutput struct {
	ID                 string
	Username           string
	FirstName          string
	LastName           string
	ProfileImageURL    string
	LanguagePreference string
}
