package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestProfileDB_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		profile  *ProfileDB
		expected string
	}{
		{
			name:     "full name wins",
			profile:  &ProfileDB{Username: strPtr("chef1"), FullName: strPtr("John Doe")},
			expected: "John Doe",
		},
		{
			name:     "username when full name missing",
			profile:  &ProfileDB{Username: strPtr("chef1")},
			expected: "chef1",
		},
		{
			name:     "username when full name empty",
			profile:  &ProfileDB{Username: strPtr("chef1"), FullName: strPtr("")},
			expected: "chef1",
		},
		{
			name:     "anonymous when both missing",
			profile:  &ProfileDB{},
			expected: "Anonymous",
		},
		{
			name:     "anonymous when both empty",
			profile:  &ProfileDB{Username: strPtr(""), FullName: strPtr("")},
			expected: "Anonymous",
		},
		{
			name:     "anonymous on nil profile",
			profile:  nil,
			expected: "Anonymous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.profile.DisplayName())
		})
	}
}
