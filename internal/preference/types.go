package preference

import (
	"time"

	"collab-srv/internal/model"
)

const (
	MaxContentPreferencesLength   = 2000
	MaxAdditionalGuidelinesLength = 2000
	MaxContentLengthLength        = 100
)

// Default negotiation policy used when an influencer has not saved one.
// Never persisted.
const (
	DefaultContentPreferences = "Various collaboration opportunities"
	DefaultMonetaryBaseline   = 500
	DefaultContentLength      = "Flexible"
)

type UpsertInput struct {
	ContentPreferences   string
	MonetaryBaseline     int
	ContentLength        string
	AdditionalGuidelines string
}

type PreferenceOutput struct {
	ID                   string
	UserID               string
	ContentPreferences   string
	MonetaryBaseline     int
	ContentLength        string
	AdditionalGuidelines string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Default returns the fixed fallback policy for influencers without a saved one.
func Default(influencerID string) model.Preference {
	return model.Preference{
		UserID:             influencerID,
		ContentPreferences: DefaultContentPreferences,
		MonetaryBaseline:   DefaultMonetaryBaseline,
		ContentLength:      DefaultContentLength,
	}
}
