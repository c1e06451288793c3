package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"collab-srv/internal/inquiry/repository"
	"collab-srv/internal/model"

	"github.com/google/uuid"
)

const inquiryColumns = `id, influencer_id, business_email, message, price, company_info, attachment_url, status, chat_active, ai_response, ai_recommendation, created_at, updated_at`

// CreateInquiry - Persist a new inquiry as pending with an open chat
func (r *implRepository) CreateInquiry(ctx context.Context, opt repository.CreateInquiryOptions) (model.Inquiry, error) {
	id := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO inquiries (id, influencer_id, business_email, message, price, company_info, attachment_url, status, chat_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + inquiryColumns

	row := r.db.QueryRowContext(ctx, query,
		id, opt.InfluencerID, opt.BusinessEmail, opt.Message,
		nullInt(opt.Price), nullString(opt.CompanyInfo), nullString(opt.AttachmentURL),
		model.InquiryStatusPending, true, now, now,
	)

	inq, err := scanInquiry(row)
	if err != nil {
		return model.Inquiry{}, fmt.Errorf("CreateInquiry: %w", err)
	}
	return inq, nil
}

// GetInquiryByID - Load one inquiry
func (r *implRepository) GetInquiryByID(ctx context.Context, id string) (model.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id = $1`

	inq, err := scanInquiry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Inquiry{}, repository.ErrNotFound
		}
		return model.Inquiry{}, fmt.Errorf("GetInquiryByID: %w", err)
	}
	return inq, nil
}

// ListInquiriesByInfluencer - Influencer inbox, newest first
func (r *implRepository) ListInquiriesByInfluencer(ctx context.Context, influencerID string) ([]model.Inquiry, error) {
	query := `
		SELECT ` + inquiryColumns + `
		FROM inquiries
		WHERE influencer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, influencerID)
	if err != nil {
		return nil, fmt.Errorf("ListInquiriesByInfluencer: %w", err)
	}
	defer rows.Close()

	var inquiries []model.Inquiry
	for rows.Next() {
		inq, err := scanInquiryRows(rows)
		if err != nil {
			return nil, fmt.Errorf("ListInquiriesByInfluencer scan: %w", err)
		}
		inquiries = append(inquiries, inq)
	}

	return inquiries, rows.Err()
}

// UpdateInquiryAIResponse - Cache the agent's first reply on the inquiry
func (r *implRepository) UpdateInquiryAIResponse(ctx context.Context, id, aiResponse string) (model.Inquiry, error) {
	query := `
		UPDATE inquiries SET ai_response = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + inquiryColumns

	inq, err := scanInquiry(r.db.QueryRowContext(ctx, query, aiResponse, time.Now(), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Inquiry{}, repository.ErrNotFound
		}
		return model.Inquiry{}, fmt.Errorf("UpdateInquiryAIResponse: %w", err)
	}
	return inq, nil
}

// UpdateInquiryStatus - Persist the influencer's decision. Only touches
// status, never chat_active or the recommendation.
func (r *implRepository) UpdateInquiryStatus(ctx context.Context, id, status string) (model.Inquiry, error) {
	query := `
		UPDATE inquiries SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + inquiryColumns

	inq, err := scanInquiry(r.db.QueryRowContext(ctx, query, status, time.Now(), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Inquiry{}, repository.ErrNotFound
		}
		return model.Inquiry{}, fmt.Errorf("UpdateInquiryStatus: %w", err)
	}
	return inq, nil
}

// CloseInquiryChat - Close the chat and write the recommendation atomically
func (r *implRepository) CloseInquiryChat(ctx context.Context, id, recommendation string) (model.Inquiry, error) {
	query := `
		UPDATE inquiries SET chat_active = FALSE, ai_recommendation = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + inquiryColumns

	inq, err := scanInquiry(r.db.QueryRowContext(ctx, query, recommendation, time.Now(), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Inquiry{}, repository.ErrNotFound
		}
		return model.Inquiry{}, fmt.Errorf("CloseInquiryChat: %w", err)
	}
	return inq, nil
}

// DeleteInquiry - Hard delete, messages cascade
func (r *implRepository) DeleteInquiry(ctx context.Context, id string) error {
	query := `DELETE FROM inquiries WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("DeleteInquiry: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInquiry(row *sql.Row) (model.Inquiry, error) {
	return scanInquiryFrom(row)
}

func scanInquiryRows(rows *sql.Rows) (model.Inquiry, error) {
	return scanInquiryFrom(rows)
}

func scanInquiryFrom(s rowScanner) (model.Inquiry, error) {
	var inq model.Inquiry
	var price sql.NullInt64
	var companyInfo, attachmentURL, aiResponse, aiRecommendation sql.NullString

	err := s.Scan(
		&inq.ID, &inq.InfluencerID, &inq.BusinessEmail, &inq.Message,
		&price, &companyInfo, &attachmentURL, &inq.Status, &inq.ChatActive,
		&aiResponse, &aiRecommendation, &inq.CreatedAt, &inq.UpdatedAt,
	)
	if err != nil {
		return model.Inquiry{}, err
	}

	if price.Valid {
		p := int(price.Int64)
		inq.Price = &p
	}
	inq.CompanyInfo = companyInfo.String
	inq.AttachmentURL = attachmentURL.String
	inq.AIResponse = aiResponse.String
	inq.AIRecommendation = aiRecommendation.String

	return inq, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}
