package models

import "time"

// JournalEntry represents a private journal record owned by exactly one user.
//
// The owner is assigned from the authenticated caller at creation time and is
// immutable afterwards. Entries are only ever read back by their owner; the
// storage layer collapses "does not exist" and "owned by someone else" into
// a single not-found signal so that other users' entries are never revealed.
type JournalEntry struct {
	// EntryID is the unique identifier of the entry,
	// assigned by the database on creation.
	EntryID int64 `json:"id"`

	// Title is a short user-supplied heading.
	Title string `json:"title"`

	// Content is the body text of the entry.
	Content string `json:"content"`

	// UserID references the owning user. Never client-supplied.
	UserID int64 `json:"owner_id"`

	// CreatedAt is the timestamp when the entry was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the JournalEntry model.
func (e JournalEntry) TableName() string {
	return "journal_entries"
}
