package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfileDB represents a public profile row in the database.
// Its id equals the owning identity's key and never changes after creation.
type ProfileDB struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Primary key, FK to users
	Username  *string   `json:"username" db:"username"`     // Unique display handle, null until set
	FullName  *string   `json:"full_name" db:"full_name"`   // Display name, null until set
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// DisplayName resolves the profile's public label:
// full_name if present, else username, else "Anonymous".
// Total over all inputs, including a nil profile.
func (p *ProfileDB) DisplayName() string {
	if p == nil {
		return "Anonymous"
	}
	if p.FullName != nil && *p.FullName != "" {
		return *p.FullName
	}
	if p.Username != nil && *p.Username != "" {
		return *p.Username
	}
	return "Anonymous"
}
