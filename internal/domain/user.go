package domain

import (
	"context"
	"time"
)

// User represents a registered account. PasswordHash holds the bcrypt
// digest of the password; the plaintext is never stored.
type User struct {
	ID           string
	Username     string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}
