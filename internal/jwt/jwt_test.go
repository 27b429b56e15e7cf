package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	j := New()
	assert.Empty(t, j.SecretKey)
	assert.Equal(t, time.Hour, j.Exp)
}

func TestNew_Options(t *testing.T) {
	j := New(WithSecretKey("secret"), WithExpiration(2*time.Hour))
	assert.Equal(t, "secret", j.SecretKey)
	assert.Equal(t, 2*time.Hour, j.Exp)
}

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	ctx := context.Background()
	j := New(WithSecretKey("secret"))
	userID := uuid.New()

	token, err := j.Generate(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWT_GetUserID(t *testing.T) {
	ctx := context.Background()
	j := New(WithSecretKey("secret"))
	userID := uuid.New()

	token, err := j.Generate(ctx, userID)
	assert.NoError(t, err)

	got, err := j.GetUserID(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWT_Validate(t *testing.T) {
	ctx := context.Background()
	j := New(WithSecretKey("secret"))

	token, err := j.Generate(ctx, uuid.New())
	assert.NoError(t, err)

	assert.NoError(t, j.Validate(ctx, token))
	assert.Error(t, j.Validate(ctx, "not.a.token"))
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := New(WithSecretKey("secret")).Generate(ctx, uuid.New())
	assert.NoError(t, err)

	_, err = New(WithSecretKey("other")).GetClaims(ctx, token)
	assert.Error(t, err)
}

func TestJWT_ExpiredToken(t *testing.T) {
	ctx := context.Background()
	j := New(WithSecretKey("secret"), WithExpiration(-time.Minute))

	token, err := j.Generate(ctx, uuid.New())
	assert.NoError(t, err)

	assert.Error(t, j.Validate(ctx, token))
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	ctx := context.Background()
	j := New(WithSecretKey("secret"))

	tests := []struct {
		name     string
		header   string
		expected string
		wantErr  bool
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", expected: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", expected: "abc.def.ghi"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "no token", header: "Bearer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, token)
		})
	}
}
