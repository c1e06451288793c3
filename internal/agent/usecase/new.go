package usecase

import (
	"collab-srv/internal/agent"
	"collab-srv/pkg/log"
	"collab-srv/pkg/openai"
)

type implUseCase struct {
	llm openai.IOpenAI
	l   log.Logger
}

// New - Factory function
func New(llm openai.IOpenAI, l log.Logger) agent.UseCase {
	return &implUseCase{
		llm: llm,
		l:   l,
	}
}
