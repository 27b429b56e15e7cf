package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/recipehub/recipehub/internal/logger"
	"github.com/recipehub/recipehub/internal/middlewares"
	"github.com/recipehub/recipehub/internal/models"
	"github.com/recipehub/recipehub/internal/services"
)

// CurrentProvider resolves a session token to its identity and held profile.
type CurrentProvider interface {
	Current(ctx context.Context, token string) (uuid.UUID, *models.ProfileDB, error)
}

// ProfileUpdater defines the profile update operation of the session layer.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, token, username, fullName string) (*models.ProfileDB, error)
}

// ProfileResponse represents a profile in API responses
// swagger:model ProfileResponse
type ProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    *string   `json:"username"`
	FullName    *string   `json:"full_name"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateProfileRequest represents the JSON body for a profile update
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// Username
	// required: true
	// default: chef1
	Username string `json:"username"`

	// Full name
	// required: true
	// default: John Doe
	FullName string `json:"full_name"`
}

// ProfileErrorResponse represents an error response for profile operations
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// default: Username is required
	Error string `json:"error"`
}

func newProfileResponse(p *models.ProfileDB) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID,
		Username:    p.Username,
		FullName:    p.FullName,
		DisplayName: p.DisplayName(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// NewGetProfileHandler returns an HTTP handler for the current user's profile.
// @Summary Current profile
// @Description Returns the profile held for the current session's identity
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ProfileResponse "Current profile"
// @Failure 401 "Missing or invalid token"
// @Router /me [get]
func NewGetProfileHandler(svc CurrentProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middlewares.GetToken(r.Context())

		userID, profile, err := svc.Current(r.Context(), token)
		if err != nil {
			logger.Log.Errorw("failed to resolve current profile", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{
				Error: "Internal server error",
			})
			return
		}
		if userID == uuid.Nil || profile == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileErrorResponse{
				Error: "Not signed in",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newProfileResponse(profile))
	}
}

// NewUpdateProfileHandler returns an HTTP handler that updates the current
// user's profile display fields.
// @Summary Update profile
// @Description Updates username and full name for the current identity
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile update request"
// @Success 200 {object} handlers.ProfileResponse "Updated profile"
// @Failure 400 {object} handlers.ProfileErrorResponse "Validation failed"
// @Failure 401 {object} handlers.ProfileErrorResponse "Not signed in"
// @Failure 409 {object} handlers.ProfileErrorResponse "Username already taken"
// @Router /profile [put]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateProfileRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		token := middlewares.GetToken(r.Context())

		profile, err := svc.UpdateProfile(r.Context(), token, req.Username, req.FullName)
		if err != nil {
			var vErr *services.ValidationError
			switch {
			case errors.As(err, &vErr):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: vErr.Message,
				})
			case errors.Is(err, services.ErrUnauthenticated):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "Not signed in",
				})
			case errors.Is(err, services.ErrUsernameTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "Username already taken",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "Failed to update profile. Please try again.",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newProfileResponse(profile))
	}
}
