package notification

type DispatchInput struct {
	BusinessEmail  string
	InfluencerName string
	Status         string // approved | rejected | needs_info
	Note           string // optional message from the influencer
}
