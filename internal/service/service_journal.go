package service

import (
	"context"
	"fmt"

	"github.com/avdeyev/go-journal-keeper/internal/logger"
	"github.com/avdeyev/go-journal-keeper/internal/store"
	"github.com/avdeyev/go-journal-keeper/models"
)

// journalService is the concrete implementation of JournalService.
// All operations run against the resolved owner passed in by the caller;
// client-supplied owner fields on incoming entries are discarded.
type journalService struct {
	journalRepository store.JournalRepository
	logger            *logger.Logger
}

// NewJournalService constructs a JournalService on top of the given
// JournalRepository.
func NewJournalService(journalRepository store.JournalRepository, logger *logger.Logger) JournalService {
	return &journalService{
		journalRepository: journalRepository,
		logger:            logger,
	}
}

// CreateEntry records a new journal entry for owner.
//
// Title and Content must both be non-empty; the entry's UserID is always
// overwritten with the owner's id before persistence.
//
// Returns the persisted entry (with a server-assigned EntryID) or:
//   - ErrInvalidDataProvided (with a wrapped validation error) if Title or
//     Content is empty.
//   - A wrapped storage error if the repository call fails.
func (j *journalService) CreateEntry(ctx context.Context, owner models.User, entry models.JournalEntry) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	if err := validateNewEntry(entry); err != nil {
		log.Error().Err(err).Int64("owner_id", owner.UserID).Msg("invalid journal entry provided")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	entry.UserID = owner.UserID

	createdEntry, err := j.journalRepository.CreateEntry(ctx, entry)
	if err != nil {
		log.Err(err).Int64("owner_id", owner.UserID).Msg("journal entry creation ended with error")
		return models.JournalEntry{}, fmt.Errorf("journal entry creation ended with error: %w", err)
	}

	return createdEntry, nil
}

// ListEntries returns all of owner's journal entries in insertion order.
// An owner with no entries receives an empty slice, not an error.
func (j *journalService) ListEntries(ctx context.Context, owner models.User) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	entries, err := j.journalRepository.ListByOwner(ctx, owner.UserID)
	if err != nil {
		log.Err(err).Int64("owner_id", owner.UserID).Msg("journal entries listing ended with error")
		return nil, fmt.Errorf("journal entries listing ended with error: %w", err)
	}

	return entries, nil
}

// GetEntry returns the single entry with the given id if owner owns it.
//
// A missing entry and an entry owned by another user are indistinguishable to
// the caller; both yield store.ErrJournalEntryNotFound.
func (j *journalService) GetEntry(ctx context.Context, owner models.User, entryID int64) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	entry, err := j.journalRepository.GetByIDForOwner(ctx, entryID, owner.UserID)
	if err != nil {
		log.Error().Err(err).Int64("owner_id", owner.UserID).Int64("entry_id", entryID).Msg("journal entry lookup failed")
		return models.JournalEntry{}, fmt.Errorf("journal entry lookup failed: %w", err)
	}

	return entry, nil
}

func validateNewEntry(entry models.JournalEntry) error {
	if entry.Title == "" {
		return ErrValidationEmptyTitle
	}
	if entry.Content == "" {
		return ErrValidationEmptyContent
	}

	return nil
}
