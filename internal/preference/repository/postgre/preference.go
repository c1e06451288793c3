package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"collab-srv/internal/model"
	"collab-srv/internal/preference/repository"

	"github.com/google/uuid"
)

// GetPreferenceByUserID - Load the influencer's saved policy
func (r *implRepository) GetPreferenceByUserID(ctx context.Context, userID string) (model.Preference, error) {
	query := `
		SELECT id, user_id, content_preferences, monetary_baseline, content_length, additional_guidelines, created_at, updated_at
		FROM influencer_preferences
		WHERE user_id = $1
	`

	var pref model.Preference
	var guidelines sql.NullString

	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&pref.ID, &pref.UserID, &pref.ContentPreferences,
		&pref.MonetaryBaseline, &pref.ContentLength, &guidelines,
		&pref.CreatedAt, &pref.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Preference{}, repository.ErrNotFound
		}
		return model.Preference{}, fmt.Errorf("GetPreferenceByUserID: %w", err)
	}

	if guidelines.Valid {
		pref.AdditionalGuidelines = guidelines.String
	}

	return pref, nil
}

// UpsertPreference - Insert or replace the policy row. One row per user.
func (r *implRepository) UpsertPreference(ctx context.Context, opt repository.UpsertPreferenceOptions) (model.Preference, error) {
	id := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO influencer_preferences (id, user_id, content_preferences, monetary_baseline, content_length, additional_guidelines, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			content_preferences = EXCLUDED.content_preferences,
			monetary_baseline = EXCLUDED.monetary_baseline,
			content_length = EXCLUDED.content_length,
			additional_guidelines = EXCLUDED.additional_guidelines,
			updated_at = EXCLUDED.updated_at
		RETURNING id, user_id, content_preferences, monetary_baseline, content_length, additional_guidelines, created_at, updated_at
	`

	var pref model.Preference
	var guidelines sql.NullString

	err := r.db.QueryRowContext(ctx, query,
		id, opt.UserID, opt.ContentPreferences, opt.MonetaryBaseline,
		opt.ContentLength, nullString(opt.AdditionalGuidelines), now, now,
	).Scan(
		&pref.ID, &pref.UserID, &pref.ContentPreferences,
		&pref.MonetaryBaseline, &pref.ContentLength, &guidelines,
		&pref.CreatedAt, &pref.UpdatedAt,
	)
	if err != nil {
		return model.Preference{}, fmt.Errorf("UpsertPreference: %w", err)
	}

	if guidelines.Valid {
		pref.AdditionalGuidelines = guidelines.String
	}

	return pref, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
