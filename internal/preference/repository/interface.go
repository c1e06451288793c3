package repository

import (
	"context"

	"collab-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	GetPreferenceByUserID(ctx context.Context, userID string) (model.Preference, error)
	UpsertPreference(ctx context.Context, opt UpsertPreferenceOptions) (model.Preference, error)
}
