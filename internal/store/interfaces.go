package store

import (
	"context"

	"github.com/avdeyev/go-journal-keeper/models"
)

// UserRepository is the persistence contract of the account directory.
type UserRepository interface {
	// CreateUser persists a new user and returns the stored record with
	// server-assigned fields. Returns ErrUserAlreadyExists when the username
	// or email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the given username, or
	// ErrNoUserWasFound when no such user exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// JournalRepository is the persistence contract of the journal store.
// Every operation is scoped to a single owner.
type JournalRepository interface {
	// CreateEntry persists a new journal entry and returns the stored record
	// with its assigned id.
	CreateEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error)

	// ListByOwner returns all entries owned by userID in insertion order.
	ListByOwner(ctx context.Context, userID int64) ([]models.JournalEntry, error)

	// GetByIDForOwner returns the entry with the given id if it is owned by
	// userID. A missing entry and an entry owned by someone else both yield
	// ErrJournalEntryNotFound.
	GetByIDForOwner(ctx context.Context, entryID, userID int64) (models.JournalEntry, error)
}
