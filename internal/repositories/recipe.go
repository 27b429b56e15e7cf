package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/recipehub/recipehub/internal/logger"
	"github.com/recipehub/recipehub/internal/models"
)

// RecipeReadRepository handles recipe read operations.
type RecipeReadRepository struct {
	db *sqlx.DB
}

func NewRecipeReadRepository(db *sqlx.DB) *RecipeReadRepository {
	return &RecipeReadRepository{db: db}
}

// ListAll returns every recipe joined with its author's display fields,
// newest first.
func (r *RecipeReadRepository) ListAll(ctx context.Context) ([]models.RecipeWithAuthor, error) {
	const query = `
		SELECT r.id, r.created_at, r.user_id, r.title, r.ingredients, r.instructions,
		       r.cooking_time, r.difficulty, r.category, r.updated_at,
		       p.username AS author_username, p.full_name AS author_full_name
		FROM recipes r
		JOIN profiles p ON p.id = r.user_id
		ORDER BY r.created_at DESC
	`

	var recipes []models.RecipeWithAuthor
	err := r.db.SelectContext(ctx, &recipes, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(recipes),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// ListByUserID returns all recipes authored by the given profile, newest first.
func (r *RecipeReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.RecipeDB, error) {
	const query = `
		SELECT id, created_at, user_id, title, ingredients, instructions,
		       cooking_time, difficulty, category, updated_at
		FROM recipes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var recipes []models.RecipeDB
	err := r.db.SelectContext(ctx, &recipes, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(recipes),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// RecipeWriteRepository handles recipe write operations.
type RecipeWriteRepository struct {
	db *sqlx.DB
}

func NewRecipeWriteRepository(db *sqlx.DB) *RecipeWriteRepository {
	return &RecipeWriteRepository{db: db}
}

// Save inserts one recipe and returns the stored row as read back
// from the database.
func (r *RecipeWriteRepository) Save(ctx context.Context, userID uuid.UUID, title, ingredients, instructions string, cookingTime int, difficulty string, category *string) (*models.RecipeDB, error) {
	const query = `
		INSERT INTO recipes (user_id, title, ingredients, instructions,
		                     cooking_time, difficulty, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, user_id, title, ingredients, instructions,
		          cooking_time, difficulty, category, updated_at
	`
	args := []any{userID, title, ingredients, instructions, cookingTime, difficulty, category}

	var recipe models.RecipeDB
	err := r.db.GetContext(ctx, &recipe, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &recipe, nil
}
