package inquiry

import (
	"io"
	"time"
)

const (
	MaxMessageLength     = 4000
	MaxCompanyInfoLength = 2000
	MaxNoteLength        = 2000

	// MaxAttachmentSize caps uploads at 10 MiB.
	MaxAttachmentSize = 10 << 20

	// AttachmentURLExpiry bounds how long a presigned attachment link stays
	// valid.
	AttachmentURLExpiry = 7 * 24 * time.Hour
)

type SubmitInput struct {
	InfluencerID  string
	BusinessEmail string
	Message       string
	Price         *int
	CompanyInfo   string
	AttachmentURL string
}

type PostMessageInput struct {
	InquiryID string
	Content   string
}

type SetStatusInput struct {
	InquiryID string
	Status    string
	Note      string // optional, embedded in the notification email
}

type InquiryOutput struct {
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

type MessageOutput struct {
	ID        string
	InquiryID string
	Role      string
	Content   string
	CreatedAt time.Time
}

// PostMessageOutput returns both halves of a chat turn.
type PostMessageOutput struct {
	UserMessage MessageOutput
	AIMessage   MessageOutput
}

type UploadAttachmentInput struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type AttachmentOutput struct {
	ObjectName string
	URL        string
	Size       int64
}
