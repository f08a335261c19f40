package domain

import "time"

// User represents a registered account. PasswordHash is the bcrypt digest of
// the registration password; the plaintext is never stored.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
