package repository

import (
	"context"

	"collab-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	InquiryRepository
	MessageRepository
}

// InquiryRepository - Interface for inquiry CRUD
type InquiryRepository interface {
	CreateInquiry(ctx context.Context, opt CreateInquiryOptions) (model.Inquiry, error)
	GetInquiryByID(ctx context.Context, id string) (model.Inquiry, error)
	ListInquiriesByInfluencer(ctx context.Context, influencerID string) ([]model.Inquiry, error)
	UpdateInquiryAIResponse(ctx context.Context, id, aiResponse string) (model.Inquiry, error)
	UpdateInquiryStatus(ctx context.Context, id, status string) (model.Inquiry, error)
	// CloseInquiryChat clears chat_active and writes the recommendation in one
	// update.
	CloseInquiryChat(ctx context.Context, id, recommendation string) (model.Inquiry, error)
	DeleteInquiry(ctx context.Context, id string) error
}

// MessageRepository - Interface for conversation messages
type MessageRepository interface {
	CreateMessage(ctx context.Context, opt CreateMessageOptions) (model.Message, error)
	ListMessagesByInquiry(ctx context.Context, inquiryID string) ([]model.Message, error)
}
