package postgre

import (
	"context"
	"fmt"
	"time"

	"collab-srv/internal/inquiry/repository"
	"collab-srv/internal/model"

	"github.com/google/uuid"
)

// CreateMessage - Append one message to the transcript
func (r *implRepository) CreateMessage(ctx context.Context, opt repository.CreateMessageOptions) (model.Message, error) {
	id := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO messages (id, inquiry_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, inquiry_id, role, content, created_at
	`

	var msg model.Message
	err := r.db.QueryRowContext(ctx, query, id, opt.InquiryID, opt.Role, opt.Content, now).Scan(
		&msg.ID, &msg.InquiryID, &msg.Role, &msg.Content, &msg.CreatedAt,
	)
	if err != nil {
		return model.Message{}, fmt.Errorf("CreateMessage: %w", err)
	}
	return msg, nil
}

// ListMessagesByInquiry - Full ordered transcript, oldest first
func (r *implRepository) ListMessagesByInquiry(ctx context.Context, inquiryID string) ([]model.Message, error) {
	query := `
		SELECT id, inquiry_id, role, content, created_at
		FROM messages
		WHERE inquiry_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("ListMessagesByInquiry: %w", err)
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		var msg model.Message
		if err := rows.Scan(&msg.ID, &msg.InquiryID, &msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListMessagesByInquiry scan: %w", err)
		}
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}
