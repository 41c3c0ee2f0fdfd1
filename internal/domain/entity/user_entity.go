package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// PasswordHash holds a bcrypt hash; the raw password is never persisted.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Mobile       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
