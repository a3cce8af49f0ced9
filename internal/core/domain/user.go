// Package domain defines the core domain models for TodoVault.
package domain

// User represents a registered account.
//
// Users are seeded at process start from configuration and are immutable
// at runtime; there is no registration or user management surface.
type User struct {
	// ID is the unique, immutable user identifier.
	ID int64 `json:"id"`

	// Username is the unique login name. Lookup is case-sensitive.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized and never logged.
	PasswordHash string `json:"-"`
}

// Public returns the client-safe projection of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:       u.ID,
		Username: u.Username,
	}
}

// PublicUser is the identity shape returned to clients on login.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Identity is the authenticated caller extracted from a verified token.
// It is attached to the request context by the auth middleware and
// consumed by every owner-scoped operation.
type Identity struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}
