package usecase

import (
	"collab-srv/internal/preference"
	"collab-srv/internal/preference/repository"
	"collab-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	l    log.Logger
}

// New - Factory function
func New(repo repository.PostgresRepository, l log.Logger) preference.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
