package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database on creation.
	UserID int64 `json:"id"`

	// Username is the unique login identifier used during authentication
	// and embedded as the subject of issued tokens.
	Username string `json:"username"`

	// Email is the unique contact address of the user.
	// Validated for format at registration time.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived digest, never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// IsActive reports whether the account is enabled. Defaults to true.
	IsActive bool `json:"is_active"`

	// IsAdmin marks administrator accounts. Defaults to false and is
	// currently not consulted by any authorization decision.
	IsAdmin bool `json:"is_admin"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
