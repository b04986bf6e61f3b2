package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, is_active, is_admin, created_at;`

	findUserByUsername = `SELECT user_id, username, email, password_hash, is_active, is_admin, created_at
    FROM users
    WHERE username = $1;`

	createJournalEntry = `INSERT INTO journal_entries (title, content, user_id)
    VALUES ($1, $2, $3)
    RETURNING entry_id, title, content, user_id, created_at;`
)

// journalEntryColumns is the column set scanned into models.JournalEntry,
// in scan order.
var journalEntryColumns = []string{"entry_id", "title", "content", "user_id", "created_at"}

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListEntriesQuery builds the owner-scoped listing query.
//
// Entries are returned in insertion order (ORDER BY entry_id) so that listing
// results are deterministic.
func buildListEntriesQuery(userID int64) (string, []any, error) {
	return psql.
		Select(journalEntryColumns...).
		From("journal_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("entry_id").
		ToSql()
}

// buildGetEntryQuery builds the single-entry lookup query.
//
// The owner filter is part of the WHERE clause, so an entry belonging to a
// different user scans as an empty result set, indistinguishable from a
// missing entry.
func buildGetEntryQuery(entryID, userID int64) (string, []any, error) {
	return psql.
		Select(journalEntryColumns...).
		From("journal_entries").
		Where(sq.Eq{"entry_id": entryID, "user_id": userID}).
		ToSql()
}
