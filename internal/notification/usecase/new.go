package usecase

import (
	"collab-srv/internal/notification"
	"collab-srv/pkg/email"
	"collab-srv/pkg/log"
)

type implUseCase struct {
	sender email.ISender
	l      log.Logger
}

// New - Factory function
func New(sender email.ISender, l log.Logger) notification.UseCase {
	return &implUseCase{
		sender: sender,
		l:      l,
	}
}
