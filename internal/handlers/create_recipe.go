package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/recipehub/recipehub/internal/logger"
	"github.com/recipehub/recipehub/internal/middlewares"
	"github.com/recipehub/recipehub/internal/models"
	"github.com/recipehub/recipehub/internal/services"
)

// RecipeCreator defines the interface that the recipe service must implement.
type RecipeCreator interface {
	Submit(ctx context.Context, userID uuid.UUID, req services.CreateRecipeRequest) (*models.RecipeDB, error)
}

// minutes accepts a JSON number or a numeric string. Anything non-numeric
// decodes to 0, so it is reported as "must be greater than 0" downstream
// rather than as a type error.
type minutes int

func (m *minutes) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	n, err := strconv.Atoi(s)
	if err != nil {
		*m = 0
		return nil
	}
	*m = minutes(n)
	return nil
}

// CreateRecipeRequest represents the JSON body for a recipe submission
// swagger:model CreateRecipeRequest
type CreateRecipeRequest struct {
	// Title
	// required: true
	// default: Classic Margherita Pizza
	Title string `json:"title"`

	// Ingredients, free text
	// required: true
	Ingredients string `json:"ingredients"`

	// Instructions, free text
	// required: true
	Instructions string `json:"instructions"`

	// Cooking time in minutes
	// required: true
	// default: 30
	CookingTime minutes `json:"cooking_time"`

	// Difficulty level: Easy, Medium or Hard
	// default: Medium
	Difficulty string `json:"difficulty"`

	// Optional category tag
	// default: Italian
	Category string `json:"category"`
}

// RecipeErrorResponse represents an error response for recipe operations
// swagger:model RecipeErrorResponse
type RecipeErrorResponse struct {
	// Error message
	// default: Recipe title is required
	Error string `json:"error"`
}

// NewCreateRecipeHandler returns an HTTP handler that creates a recipe for
// the current identity. The client is expected to show the created recipe
// and navigate away after a short delay; the API itself returns immediately.
// @Summary Create a recipe
// @Description Validates and stores a recipe authored by the current user
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createRecipeRequest body handlers.CreateRecipeRequest true "Recipe submission"
// @Success 201 {object} models.RecipeDB "Created recipe"
// @Failure 400 {object} handlers.RecipeErrorResponse "Validation failed"
// @Failure 401 {object} handlers.RecipeErrorResponse "Not signed in"
// @Failure 500 {object} handlers.RecipeErrorResponse "Submission failed"
// @Router /recipes [post]
func NewCreateRecipeHandler(svc RecipeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateRecipeRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RecipeErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		userID := middlewares.GetUserID(r.Context())

		recipe, err := svc.Submit(r.Context(), userID, services.CreateRecipeRequest{
			Title:        req.Title,
			Ingredients:  req.Ingredients,
			Instructions: req.Instructions,
			CookingTime:  int(req.CookingTime),
			Difficulty:   req.Difficulty,
			Category:     req.Category,
		})
		if err != nil {
			var vErr *services.ValidationError
			switch {
			case errors.As(err, &vErr):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RecipeErrorResponse{
					Error: vErr.Message,
				})
			case errors.Is(err, services.ErrUnauthenticated):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(RecipeErrorResponse{
					Error: "You must be logged in to create a recipe",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RecipeErrorResponse{
					Error: "Failed to create recipe. Please try again.",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(recipe)
	}
}
