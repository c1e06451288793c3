package model

import "time"

// Inquiry statuses. Pending is the only non-terminal status; an inquiry may
// revert to pending at any time.
const (
	InquiryStatusPending   = "pending"
	InquiryStatusApproved  = "approved"
	InquiryStatusRejected  = "rejected"
	InquiryStatusNeedsInfo = "needs_info"
)

// IsValidInquiryStatus reports whether s is a known inquiry status.
func IsValidInquiryStatus(s string) bool {
	switch s {
	case InquiryStatusPending, InquiryStatusApproved, InquiryStatusRejected, InquiryStatusNeedsInfo:
		return true
	}
	return false
}

// Inquiry represents a business inquiry submitted to an influencer.
// AIResponse caches the agent's first reply. AIRecommendation is written
// exactly once, when the chat closes.
type Inquiry struct {
	ID               string
	InfluencerID     string
	BusinessEmail    string
	Message          string
	Price            *int
	CompanyInfo      string
	AttachmentURL    string
	Status           string
	ChatActive       bool
	AIResponse       string
	AIRecommendation string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
