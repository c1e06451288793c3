package usecase

import (
	"collab-srv/internal/user"
	"collab-srv/internal/user/repository"
	"collab-srv/pkg/jwt"
	"collab-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	jwt  *jwt.Manager
	l    log.Logger
}

// New - Factory function
func New(repo repository.PostgresRepository, jwtManager *jwt.Manager, l log.Logger) user.UseCase {
	return &implUseCase{
		repo: repo,
		jwt:  jwtManager,
		l:    l,
	}
}
