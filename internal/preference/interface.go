package preference

import (
	"context"

	"collab-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope) (PreferenceOutput, error)
	Upsert(ctx context.Context, sc model.Scope, input UpsertInput) (PreferenceOutput, error)
	// Resolve returns the influencer's saved policy, or the fixed default when
	// none exists. The default path never writes storage.
	Resolve(ctx context.Context, influencerID string) (model.Preference, error)
}
