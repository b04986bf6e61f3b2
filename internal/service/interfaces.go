package service

import (
	"context"

	"github.com/avdeyev/go-journal-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ResolveToken(ctx context.Context, tokenString string) (models.User, error)
}

type JournalService interface {
	CreateEntry(ctx context.Context, owner models.User, entry models.JournalEntry) (models.JournalEntry, error)
	ListEntries(ctx context.Context, owner models.User) ([]models.JournalEntry, error)
	GetEntry(ctx context.Context, owner models.User, entryID int64) (models.JournalEntry, error)
}
