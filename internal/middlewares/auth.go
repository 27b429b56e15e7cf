package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/recipehub/recipehub/internal/logger"
	"github.com/recipehub/recipehub/internal/models"
)

// Tokener defines the minimal token interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// SessionChecker reports the identity behind a live session token.
// A dead token resolves to uuid.Nil without error.
type SessionChecker interface {
	Current(ctx context.Context, token string) (uuid.UUID, *models.ProfileDB, error)
}

// AuthMiddleware validates the bearer token signature and checks that the
// session behind it is still live, so that sign-out actually revokes access.
// The resolved identity and token are stored in the request context.
func AuthMiddleware(tokener Tokener, sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			sessionUserID, _, err := sessions.Current(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("session lookup failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if sessionUserID == uuid.Nil || sessionUserID != userID {
				logger.Log.Errorw("authorization failed", "reason", "no live session for token")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = SetUserID(ctx, userID)
			ctx = SetToken(ctx, tokenString)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type userIDKey struct{}
type tokenKey struct{}

// SetUserID stores the authenticated identity key in the context.
func SetUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserID retrieves the authenticated identity key from the context.
// Returns uuid.Nil when no identity is present.
func GetUserID(ctx context.Context) uuid.UUID {
	userID, _ := ctx.Value(userIDKey{}).(uuid.UUID)
	return userID
}

// SetToken stores the raw session token in the context.
func SetToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// GetToken retrieves the raw session token from the context.
func GetToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
