package models

import (
	"strings"
	"time"
)

// User represents an account that owns notes and authenticates with a
// username and password.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier assigned by the storage layer on creation.
	UserID int64 `json:"id"`

	// FirstName is an optional given name, at most 50 characters.
	FirstName string `json:"first_name"`

	// LastName is an optional family name, at most 50 characters.
	LastName string `json:"last_name"`

	// Username is the unique login of the user, at most 30 characters.
	Username string `json:"username"`

	// Password stores the base64-encoded argon2id hash of the user's password.
	// This value MUST be a derived value, never plaintext.
	Password string `json:"-"`

	// PasswordSalt is the per-user random salt (base64) used to derive Password.
	PasswordSalt string `json:"-"`

	// Role is a free-form role label such as "Admin" or "User".
	Role string `json:"role"`

	// Notes holds the notes owned by the user. It is populated only when the
	// caller explicitly loads them and is never persisted through the user.
	Notes []Note `json:"-"`

	// Age is computed by callers that know it and is never persisted.
	Age int `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// FullName returns "FirstName LastName" with surrounding blanks removed.
// It is empty when neither name is set.
func (u User) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
