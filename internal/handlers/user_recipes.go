package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/recipehub/recipehub/internal/logger"
	"github.com/recipehub/recipehub/internal/models"
	"github.com/recipehub/recipehub/internal/services"
)

// AuthorRecipeLister defines the interface that the recipe service must
// implement for per-author listings.
type AuthorRecipeLister interface {
	ListByUsername(ctx context.Context, username string) (*models.ProfileDB, []models.RecipeDB, error)
}

// UserRecipesResponse represents a public profile with its recipes
// swagger:model UserRecipesResponse
type UserRecipesResponse struct {
	Profile ProfileResponse   `json:"profile"`
	Recipes []models.RecipeDB `json:"recipes"`
}

// NewUserRecipesHandler returns an HTTP handler for a public profile page:
// the profile resolved by exact username plus that author's recipes,
// newest first.
// @Summary List recipes by author
// @Description Resolves a profile by username and returns its recipes, newest first
// @Tags recipes
// @Produce json
// @Param username path string true "Author username"
// @Success 200 {object} handlers.UserRecipesResponse "Profile and recipes"
// @Failure 404 {object} handlers.RecipeErrorResponse "User not found"
// @Failure 500 {object} handlers.RecipeErrorResponse "Fetch failed"
// @Router /profiles/{username}/recipes [get]
func NewUserRecipesHandler(svc AuthorRecipeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		profile, recipes, err := svc.ListByUsername(r.Context(), username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RecipeErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("failed to load profile", "username", username, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RecipeErrorResponse{
					Error: "Failed to load profile",
				})
			}
			return
		}

		if recipes == nil {
			recipes = []models.RecipeDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserRecipesResponse{
			Profile: newProfileResponse(profile),
			Recipes: recipes,
		})
	}
}
