package model

import "time"

// Message roles.
const (
	MessageRoleSystem    = "system"
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// Message represents a single message in an inquiry conversation.
// Transcript order is CreatedAt ascending.
type Message struct {
	ID        string
	InquiryID string
	Role      string // "system" | "user" | "assistant"
	Content   string
	CreatedAt time.Time
}
