package service

import (
	"github.com/avdeyev/go-journal-keeper/internal/config"
	"github.com/avdeyev/go-journal-keeper/internal/logger"
	"github.com/avdeyev/go-journal-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	JournalService JournalService
}

func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, cfg.Auth, logger),
		JournalService: NewJournalService(repositories.JournalRepository, logger),
	}
}
