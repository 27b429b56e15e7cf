package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/recipehub/recipehub/internal/models"
)

func validRequest() CreateRecipeRequest {
	return CreateRecipeRequest{
		Title:        "Margherita Pizza",
		Ingredients:  "dough, tomato, mozzarella",
		Instructions: "bake it",
		CookingTime:  30,
	}
}

// Validation stops at the first failing check; no write or event is issued.
func TestRecipeService_Submit_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name        string
		mutate      func(req *CreateRecipeRequest)
		expectedMsg string
	}{
		{
			name:        "blank title",
			mutate:      func(req *CreateRecipeRequest) { req.Title = "   " },
			expectedMsg: "Recipe title is required",
		},
		{
			name: "blank title reported before blank ingredients",
			mutate: func(req *CreateRecipeRequest) {
				req.Title = ""
				req.Ingredients = ""
			},
			expectedMsg: "Recipe title is required",
		},
		{
			name:        "blank ingredients",
			mutate:      func(req *CreateRecipeRequest) { req.Ingredients = "" },
			expectedMsg: "Ingredients are required",
		},
		{
			name:        "blank instructions",
			mutate:      func(req *CreateRecipeRequest) { req.Instructions = "" },
			expectedMsg: "Instructions are required",
		},
		{
			name:        "zero cooking time",
			mutate:      func(req *CreateRecipeRequest) { req.CookingTime = 0 },
			expectedMsg: "Cooking time must be greater than 0",
		},
		{
			name:        "negative cooking time",
			mutate:      func(req *CreateRecipeRequest) { req.CookingTime = -5 },
			expectedMsg: "Cooking time must be greater than 0",
		},
		{
			name:        "unknown difficulty",
			mutate:      func(req *CreateRecipeRequest) { req.Difficulty = "Impossible" },
			expectedMsg: "Difficulty must be Easy, Medium or Hard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No writer or publisher expectations: validation failures must
			// not touch the backend.
			writer := NewMockRecipeWriter(ctrl)
			publisher := NewMockRecipePublisher(ctrl)
			svc := NewRecipeService(writer, NewMockRecipeReader(ctrl), NewMockProfileReader(ctrl), publisher)

			req := validRequest()
			tt.mutate(&req)

			recipe, err := svc.Submit(ctx, userID, req)

			assert.Nil(t, recipe)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.expectedMsg, vErr.Message)
		})
	}
}

func TestRecipeService_Submit_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewRecipeService(NewMockRecipeWriter(ctrl), NewMockRecipeReader(ctrl), NewMockProfileReader(ctrl), nil)

	recipe, err := svc.Submit(context.Background(), uuid.Nil, validRequest())

	assert.Nil(t, recipe)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestRecipeService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name               string
		req                CreateRecipeRequest
		expectedDifficulty string
		expectedCategory   *string
	}{
		{
			name:               "blank difficulty defaults to Medium",
			req:                validRequest(),
			expectedDifficulty: models.DifficultyMedium,
		},
		{
			name: "explicit difficulty kept",
			req: func() CreateRecipeRequest {
				r := validRequest()
				r.Difficulty = models.DifficultyHard
				return r
			}(),
			expectedDifficulty: models.DifficultyHard,
		},
		{
			name: "blank category stored as absent",
			req: func() CreateRecipeRequest {
				r := validRequest()
				r.Category = "   "
				return r
			}(),
			expectedDifficulty: models.DifficultyMedium,
		},
		{
			name: "category kept when present",
			req: func() CreateRecipeRequest {
				r := validRequest()
				r.Category = "Italian"
				return r
			}(),
			expectedDifficulty: models.DifficultyMedium,
			expectedCategory:   func() *string { s := "Italian"; return &s }(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := NewMockRecipeWriter(ctrl)
			publisher := NewMockRecipePublisher(ctrl)

			saved := &models.RecipeDB{
				ID:         uuid.New(),
				UserID:     userID,
				Title:      tt.req.Title,
				Difficulty: tt.expectedDifficulty,
				Category:   tt.expectedCategory,
			}

			writer.EXPECT().
				Save(ctx, userID, "Margherita Pizza", "dough, tomato, mozzarella", "bake it",
					30, tt.expectedDifficulty, tt.expectedCategory).
				Return(saved, nil)
			publisher.EXPECT().PublishRecipeCreated(ctx, saved).Return(nil)

			svc := NewRecipeService(writer, NewMockRecipeReader(ctrl), NewMockProfileReader(ctrl), publisher)

			recipe, err := svc.Submit(ctx, userID, tt.req)

			assert.NoError(t, err)
			assert.Equal(t, saved, recipe)
			assert.Equal(t, userID, recipe.UserID)
		})
	}
}

func TestRecipeService_Submit_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	writer := NewMockRecipeWriter(ctrl)
	writer.EXPECT().
		Save(ctx, userID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	svc := NewRecipeService(writer, NewMockRecipeReader(ctrl), NewMockProfileReader(ctrl), nil)

	recipe, err := svc.Submit(ctx, userID, validRequest())

	assert.Nil(t, recipe)
	assert.ErrorIs(t, err, ErrSubmission)
}

func TestRecipeService_Submit_PublishFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	saved := &models.RecipeDB{ID: uuid.New(), UserID: userID, Title: "Margherita Pizza"}

	writer := NewMockRecipeWriter(ctrl)
	writer.EXPECT().
		Save(ctx, userID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(saved, nil)

	publisher := NewMockRecipePublisher(ctrl)
	publisher.EXPECT().PublishRecipeCreated(ctx, saved).Return(errors.New("kafka down"))

	svc := NewRecipeService(writer, NewMockRecipeReader(ctrl), NewMockProfileReader(ctrl), publisher)

	recipe, err := svc.Submit(ctx, userID, validRequest())

	assert.NoError(t, err)
	assert.Equal(t, saved, recipe)
}

func TestRecipeService_ListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	recipes := []models.RecipeWithAuthor{
		{RecipeDB: models.RecipeDB{ID: uuid.New(), Title: "Margherita Pizza"}},
	}

	tests := []struct {
		name        string
		mockSetup   func(reader *MockRecipeReader)
		expected    []models.RecipeWithAuthor
		expectedErr error
	}{
		{
			name: "success",
			mockSetup: func(reader *MockRecipeReader) {
				reader.EXPECT().ListAll(ctx).Return(recipes, nil)
			},
			expected: recipes,
		},
		{
			name: "fetch failure",
			mockSetup: func(reader *MockRecipeReader) {
				reader.EXPECT().ListAll(ctx).Return(nil, errors.New("db down"))
			},
			expectedErr: ErrFetch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewMockRecipeReader(ctrl)
			tt.mockSetup(reader)

			svc := NewRecipeService(NewMockRecipeWriter(ctrl), reader, NewMockProfileReader(ctrl), nil)

			got, err := svc.ListAll(ctx)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRecipeService_ListByUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	username := "chef1"
	profile := &models.ProfileDB{ID: uuid.New()}
	recipes := []models.RecipeDB{{ID: uuid.New(), UserID: profile.ID, Title: "Margherita Pizza"}}

	tests := []struct {
		name        string
		mockSetup   func(profiles *MockProfileReader, reader *MockRecipeReader)
		expectedErr error
	}{
		{
			name: "success",
			mockSetup: func(profiles *MockProfileReader, reader *MockRecipeReader) {
				profiles.EXPECT().GetByUsername(ctx, username).Return(profile, nil)
				reader.EXPECT().ListByUserID(ctx, profile.ID).Return(recipes, nil)
			},
		},
		{
			// Unknown username: the recipe query is never issued.
			name: "profile not found",
			mockSetup: func(profiles *MockProfileReader, reader *MockRecipeReader) {
				profiles.EXPECT().GetByUsername(ctx, username).Return(nil, nil)
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "profile lookup failure",
			mockSetup: func(profiles *MockProfileReader, reader *MockRecipeReader) {
				profiles.EXPECT().GetByUsername(ctx, username).Return(nil, errors.New("db down"))
			},
			expectedErr: ErrFetch,
		},
		{
			name: "recipe listing failure",
			mockSetup: func(profiles *MockProfileReader, reader *MockRecipeReader) {
				profiles.EXPECT().GetByUsername(ctx, username).Return(profile, nil)
				reader.EXPECT().ListByUserID(ctx, profile.ID).Return(nil, errors.New("db down"))
			},
			expectedErr: ErrFetch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := NewMockProfileReader(ctrl)
			reader := NewMockRecipeReader(ctrl)
			tt.mockSetup(profiles, reader)

			svc := NewRecipeService(NewMockRecipeWriter(ctrl), reader, profiles, nil)

			gotProfile, gotRecipes, err := svc.ListByUsername(ctx, username)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, gotProfile)
				assert.Nil(t, gotRecipes)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, profile, gotProfile)
			assert.Equal(t, recipes, gotRecipes)
		})
	}
}
