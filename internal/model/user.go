package model

import "time"

// User types.
const (
	UserTypeInfluencer = "influencer"
	UserTypeBusiness   = "business"
)

// User represents an account, typically an influencer receiving inquiries.
type User struct {
	ID                 string
	Email              string
	Username           string
	FirstName          string
	LastName           string
	ProfileImageURL    string
	PasswordHash       string
	LanguagePreference string // "en" | "zh"
	UserType           string // "influencer" | "business"
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DisplayName returns the user's presentable name for emails and prompts.
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.Username != "":
		return u.Username
	default:
		return "the influencer"
	}
}
