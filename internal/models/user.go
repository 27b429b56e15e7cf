package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents an authentication identity record in the database.
// It is distinct from the Profile, which carries public display metadata.
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`             // Primary key, equal to the profile id
	Email        string    `json:"email" db:"email"`            // Unique login email
	PasswordHash string    `json:"-" db:"password_hash"`        // Hashed password
	CreatedAt    time.Time `json:"created_at" db:"created_at"`  // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`  // Last update timestamp
}
