package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/recipehub/recipehub/internal/logger"
	"github.com/recipehub/recipehub/internal/middlewares"
)

// SignOuter defines the interface that the session layer must implement.
type SignOuter interface {
	SignOut(ctx context.Context, token string) error
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Signed out
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler that closes the current session.
// Signing out an already-dead session is a no-op and still succeeds.
// @Summary Sign out
// @Description Revokes the current session token. Idempotent.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.LogoutResponse "Session closed"
// @Failure 401 "Missing or invalid token"
// @Router /logout [post]
func NewLogoutHandler(svc SignOuter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middlewares.GetToken(r.Context())

		if err := svc.SignOut(r.Context(), token); err != nil {
			logger.Log.Errorw("failed to sign out", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{
				"error": "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "Signed out",
		})
	}
}
