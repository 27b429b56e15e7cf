package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipe difficulty levels.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// ValidDifficulty reports whether d is one of the enumerated difficulty levels.
func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// RecipeDB represents a recipe row in the database.
type RecipeDB struct {
	ID           uuid.UUID `json:"id" db:"id"`                     // Primary key, generated at insert
	UserID       uuid.UUID `json:"user_id" db:"user_id"`           // FK to the authoring profile, immutable
	Title        string    `json:"title" db:"title"`               // Required free text
	Ingredients  string    `json:"ingredients" db:"ingredients"`   // Required free text
	Instructions string    `json:"instructions" db:"instructions"` // Required free text
	CookingTime  int       `json:"cooking_time" db:"cooking_time"` // Minutes, always > 0
	Difficulty   string    `json:"difficulty" db:"difficulty"`     // Easy, Medium or Hard
	Category     *string   `json:"category" db:"category"`         // Optional tag, null when blank
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

// RecipeWithAuthor is a recipe joined with its author's profile fields
// for listing views.
type RecipeWithAuthor struct {
	RecipeDB
	AuthorUsername *string `json:"author_username" db:"author_username"`
	AuthorFullName *string `json:"author_full_name" db:"author_full_name"`
}

// AuthorName resolves the author label for display:
// full_name if present, else username, else "Anonymous".
func (r *RecipeWithAuthor) AuthorName() string {
	if r.AuthorFullName != nil && *r.AuthorFullName != "" {
		return *r.AuthorFullName
	}
	if r.AuthorUsername != nil && *r.AuthorUsername != "" {
		return *r.AuthorUsername
	}
	return "Anonymous"
}
