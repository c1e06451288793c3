package repository

type UpsertPreferenceOptions struct {
	UserID               string
	ContentPreferences   string
	MonetaryBaseline     int
	ContentLength        string
	AdditionalGuidelines string
}
