package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDifficulty(t *testing.T) {
	tests := []struct {
		d        string
		expected bool
	}{
		{DifficultyEasy, true},
		{DifficultyMedium, true},
		{DifficultyHard, true},
		{"", false},
		{"easy", false},
		{"Impossible", false},
	}

	for _, tt := range tests {
		t.Run(tt.d, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidDifficulty(tt.d))
		})
	}
}

func TestRecipeWithAuthor_AuthorName(t *testing.T) {
	tests := []struct {
		name     string
		recipe   RecipeWithAuthor
		expected string
	}{
		{
			name:     "full name wins",
			recipe:   RecipeWithAuthor{AuthorUsername: strPtr("chef1"), AuthorFullName: strPtr("John Doe")},
			expected: "John Doe",
		},
		{
			name:     "username when full name missing",
			recipe:   RecipeWithAuthor{AuthorUsername: strPtr("chef1")},
			expected: "chef1",
		},
		{
			name:     "username when full name empty",
			recipe:   RecipeWithAuthor{AuthorUsername: strPtr("chef1"), AuthorFullName: strPtr("")},
			expected: "chef1",
		},
		{
			name:     "anonymous when author has no profile fields",
			recipe:   RecipeWithAuthor{},
			expected: "Anonymous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.recipe.AuthorName())
		})
	}
}
