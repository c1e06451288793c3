package model

import "time"

// Preference represents an influencer's negotiation policy. One row per user.
type Preference struct {
	ID                   string
	UserID               string
	ContentPreferences   string
	MonetaryBaseline     int
	ContentLength        string
	AdditionalGuidelines string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
