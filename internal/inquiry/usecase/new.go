package usecase

import (
	"collab-srv/internal/agent"
	"collab-srv/internal/inquiry"
	"collab-srv/internal/inquiry/repository"
	"collab-srv/internal/notification"
	"collab-srv/internal/preference"
	"collab-srv/internal/user"
	"collab-srv/pkg/kafka"
	"collab-srv/pkg/log"
	"collab-srv/pkg/storage"
)

type implUseCase struct {
	repo     repository.PostgresRepository
	prefUC   preference.UseCase
	agentUC  agent.UseCase
	notifUC  notification.UseCase
	userUC   user.UseCase
	producer kafka.IProducer
	storage  storage.IStorage
	l        log.Logger

	// chatMu serializes PostMessage and Close per inquiry so concurrent turns
	// never read overlapping history.
	chatMu *keyedMutex
}

// New - Factory function
func New(
	repo repository.PostgresRepository,
	prefUC preference.UseCase,
	agentUC agent.UseCase,
	notifUC notification.UseCase,
	userUC user.UseCase,
	producer kafka.IProducer,
	store storage.IStorage,
	l log.Logger,
) inquiry.UseCase {
	return &implUseCase{
		repo:     repo,
		prefUC:   prefUC,
		agentUC:  agentUC,
		notifUC:  notifUC,
		userUC:   userUC,
		producer: producer,
		storage:  store,
		l:        l,
		chatMu:   newKeyedMutex(),
	}
}
