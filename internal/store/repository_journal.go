package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avdeyev/go-journal-keeper/internal/logger"
	"github.com/avdeyev/go-journal-keeper/models"
)

// journalRepository is the PostgreSQL-backed implementation of
// [JournalRepository]. It executes all journal-entry operations directly
// against the "journal_entries" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, entry_id).
type journalRepository struct {
	*DB
	logger *logger.Logger
}

// NewJournalRepository constructs a [JournalRepository] backed by the
// provided database connection and logger.
func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	return &journalRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateEntry persists a new journal entry and returns the stored record,
// including the database-assigned entry id and creation timestamp.
//
// entry.UserID must already be set to the authenticated owner by the caller;
// the repository never derives it from anything else.
func (j *journalRepository) CreateEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	row := j.DB.QueryRowContext(ctx, createJournalEntry, entry.Title, entry.Content, entry.UserID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*journalRepository.CreateEntry").
			Int64("user_id", entry.UserID).
			Msg("failed to execute insert for journal entry")
		return models.JournalEntry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&entry.EntryID, &entry.Title, &entry.Content, &entry.UserID, &entry.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*journalRepository.CreateEntry").
			Int64("user_id", entry.UserID).
			Msg("failed to scan inserted journal entry")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

// ListByOwner retrieves every journal entry owned by the given user, in
// insertion order. Returns an empty slice when the user has no entries.
func (j *journalRepository) ListByOwner(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "*journalRepository.ListByOwner").
			Int64("user_id", userID).
			Msg("failed to build listing query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := j.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*journalRepository.ListByOwner").
			Int64("user_id", userID).
			Msg("failed to execute query for listing journal entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0, 20)

	for rows.Next() {
		var entry models.JournalEntry

		scanErr := rows.Scan(
			&entry.EntryID,
			&entry.Title,
			&entry.Content,
			&entry.UserID,
			&entry.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*journalRepository.ListByOwner").
				Int64("user_id", userID).
				Msg("failed to scan journal entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*journalRepository.ListByOwner").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// GetByIDForOwner retrieves a single journal entry by id, scoped to the given
// owner.
//
// The ownership filter is part of the query itself, so a missing entry and an
// entry owned by another user both produce [ErrJournalEntryNotFound]; callers
// can never learn whether somebody else's entry exists.
func (j *journalRepository) GetByIDForOwner(ctx context.Context, entryID, userID int64) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntryQuery(entryID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*journalRepository.GetByIDForOwner").
			Int64("user_id", userID).
			Int64("entry_id", entryID).
			Msg("failed to build lookup query")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.JournalEntry
	row := j.DB.QueryRowContext(ctx, query, args...)

	if rowErr := row.Err(); rowErr != nil {
		log.Err(rowErr).
			Str("func", "*journalRepository.GetByIDForOwner").
			Int64("user_id", userID).
			Int64("entry_id", entryID).
			Msg("failed to execute lookup query")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, rowErr)
	}

	if err := row.Scan(&entry.EntryID, &entry.Title, &entry.Content, &entry.UserID, &entry.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.JournalEntry{}, ErrJournalEntryNotFound
		}
		log.Err(err).
			Str("func", "*journalRepository.GetByIDForOwner").
			Int64("user_id", userID).
			Int64("entry_id", entryID).
			Msg("failed to scan journal entry")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}
