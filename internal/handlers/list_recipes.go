package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/recipehub/recipehub/internal/logger"
	"github.com/recipehub/recipehub/internal/models"
)

// RecipeLister defines the interface that the recipe service must implement.
type RecipeLister interface {
	ListAll(ctx context.Context) ([]models.RecipeWithAuthor, error)
}

// RecipeItem represents one recipe in a listing, with the author label
// already resolved: full name, else username, else "Anonymous".
// swagger:model RecipeItem
type RecipeItem struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Ingredients    string    `json:"ingredients"`
	Instructions   string    `json:"instructions"`
	CookingTime    int       `json:"cooking_time"`
	Difficulty     string    `json:"difficulty"`
	Category       *string   `json:"category"`
	Author         string    `json:"author"`
	AuthorUsername *string   `json:"author_username"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListRecipesResponse represents the recipe listing response
// swagger:model ListRecipesResponse
type ListRecipesResponse struct {
	Recipes []RecipeItem `json:"recipes"`
}

// NewListRecipesHandler returns an HTTP handler for the community feed:
// every recipe with its author, newest first.
// @Summary List all recipes
// @Description Returns every recipe joined with its author, ordered newest first
// @Tags recipes
// @Produce json
// @Success 200 {object} handlers.ListRecipesResponse "Recipes"
// @Failure 500 {object} handlers.RecipeErrorResponse "Fetch failed"
// @Router /recipes [get]
func NewListRecipesHandler(svc RecipeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipes, err := svc.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list recipes", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RecipeErrorResponse{
				Error: "Failed to load recipes",
			})
			return
		}

		items := make([]RecipeItem, 0, len(recipes))
		for i := range recipes {
			r := &recipes[i]
			items = append(items, RecipeItem{
				ID:             r.ID,
				Title:          r.Title,
				Ingredients:    r.Ingredients,
				Instructions:   r.Instructions,
				CookingTime:    r.CookingTime,
				Difficulty:     r.Difficulty,
				Category:       r.Category,
				Author:         r.AuthorName(),
				AuthorUsername: r.AuthorUsername,
				CreatedAt:      r.CreatedAt,
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListRecipesResponse{Recipes: items})
	}
}
