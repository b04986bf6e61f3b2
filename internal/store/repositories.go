package store

import "github.com/avdeyev/go-journal-keeper/internal/logger"

// Repositories bundles all persistence-layer implementations so they can be
// wired into the service layer as a single unit.
type Repositories struct {
	UserRepository    UserRepository
	JournalRepository JournalRepository
}

// NewRepositories constructs all repositories on top of the shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, logger),
		JournalRepository: NewJournalRepository(db, logger),
	}
}
