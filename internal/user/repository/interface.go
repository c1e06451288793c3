package repository

import (
	"context"

	"collab-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetUserByID(ctx context.Context, id string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	UpdateLanguage(ctx context.Context, userID, language string) (model.User, error)
	UpdateUsername(ctx context.Context, userID, username string) (model.User, error)
}
