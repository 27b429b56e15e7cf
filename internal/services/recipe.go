package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/recipehub/recipehub/internal/logger"
	"github.com/recipehub/recipehub/internal/models"
)

// RecipeWriter defines write operations for recipes.
type RecipeWriter interface {
	Save(ctx context.Context, userID uuid.UUID, title, ingredients, instructions string, cookingTime int, difficulty string, category *string) (*models.RecipeDB, error)
}

// RecipeReader defines read-only operations for recipes.
type RecipeReader interface {
	ListAll(ctx context.Context) ([]models.RecipeWithAuthor, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.RecipeDB, error)
}

// ProfileReader defines the profile lookup needed for per-author listings.
type ProfileReader interface {
	GetByUsername(ctx context.Context, username string) (*models.ProfileDB, error)
}

// RecipePublisher publishes recipe domain events to the event stream.
type RecipePublisher interface {
	PublishRecipeCreated(ctx context.Context, recipe *models.RecipeDB) error
}

// CreateRecipeRequest carries raw form fields for a recipe submission.
// A non-numeric cooking time is coerced to 0 before it reaches Submit,
// so it fails the positivity check rather than a type check.
type CreateRecipeRequest struct {
	Title        string
	Ingredients  string
	Instructions string
	CookingTime  int
	Difficulty   string
	Category     string
}

// RecipeService transforms raw form fields into persisted recipes and
// materializes persisted recipes back into listings.
type RecipeService struct {
	writer    RecipeWriter
	reader    RecipeReader
	profiles  ProfileReader
	publisher RecipePublisher
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(writer RecipeWriter, reader RecipeReader, profiles ProfileReader, publisher RecipePublisher) *RecipeService {
	return &RecipeService{
		writer:    writer,
		reader:    reader,
		profiles:  profiles,
		publisher: publisher,
	}
}

// Submit validates and normalizes the form fields, then issues exactly one
// insert authored by userID. Validation short-circuits at the first failure
// so the caller sees a single message, and no backend call is made until
// every check passes.
func (svc *RecipeService) Submit(ctx context.Context, userID uuid.UUID, req CreateRecipeRequest) (*models.RecipeDB, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, NewValidationError("Recipe title is required")
	}

	ingredients := strings.TrimSpace(req.Ingredients)
	if ingredients == "" {
		return nil, NewValidationError("Ingredients are required")
	}

	instructions := strings.TrimSpace(req.Instructions)
	if instructions == "" {
		return nil, NewValidationError("Instructions are required")
	}

	if req.CookingTime <= 0 {
		return nil, NewValidationError("Cooking time must be greater than 0")
	}

	difficulty := strings.TrimSpace(req.Difficulty)
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}
	if !models.ValidDifficulty(difficulty) {
		return nil, NewValidationError("Difficulty must be Easy, Medium or Hard")
	}

	// Blank category is stored as absent, not as an empty string.
	var category *string
	if c := strings.TrimSpace(req.Category); c != "" {
		category = &c
	}

	recipe, err := svc.writer.Save(ctx, userID, title, ingredients, instructions, req.CookingTime, difficulty, category)
	if err != nil {
		logger.Log.Errorw("failed to save recipe", "user_id", userID, "err", err)
		return nil, ErrSubmission
	}

	if svc.publisher != nil {
		// Best effort: the event stream never affects the submission outcome.
		if err := svc.publisher.PublishRecipeCreated(ctx, recipe); err != nil {
			logger.Log.Errorw("failed to publish recipe created event", "recipe_id", recipe.ID, "err", err)
		}
	}

	return recipe, nil
}

// ListAll returns every recipe joined with its author, newest first.
func (svc *RecipeService) ListAll(ctx context.Context) ([]models.RecipeWithAuthor, error) {
	recipes, err := svc.reader.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list recipes", "err", err)
		return nil, ErrFetch
	}
	return recipes, nil
}

// ListByUsername resolves a profile by exact username and returns it with
// that author's recipes, newest first. The recipe query is only issued
// when the profile lookup succeeds.
func (svc *RecipeService) ListByUsername(ctx context.Context, username string) (*models.ProfileDB, []models.RecipeDB, error) {
	profile, err := svc.profiles.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to look up profile", "username", username, "err", err)
		return nil, nil, ErrFetch
	}
	if profile == nil {
		return nil, nil, ErrNotFound
	}

	recipes, err := svc.reader.ListByUserID(ctx, profile.ID)
	if err != nil {
		logger.Log.Errorw("failed to list recipes by author", "user_id", profile.ID, "err", err)
		return nil, nil, ErrFetch
	}

	return profile, recipes, nil
}
