package user

import (
	"context"

	"collab-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	GetMe(ctx context.Context, sc model.Scope) (UserOutput, error)
	// GetProfileByUsername serves the public inquiry form page.
	GetProfileByUsername(ctx context.Context, username string) (ProfileOutput, error)
	// GetByID is consumed by other domains (agent language, notification name).
	GetByID(ctx context.Context, id string) (model.User, error)
	UpdateLanguage(ctx context.Context, sc model.Scope, language string) (UserOutput, error)
	UpdateUsername(ctx context.Context, sc model.Scope, username string) (UserOutput, error)
}
