package mock

import (
	"context"

	"github.com/ladle-app/ladle"
)

var _ ladle.RecipeService = (*RecipeService)(nil)

// RecipeService is a mock implementation of ladle.RecipeService.
type RecipeService struct {
	CreateRecipeFn       func(ctx context.Context, rec *ladle.StoredRecipe) error
	FindRecipeByIDFn     func(ctx context.Context, id string) (*ladle.StoredRecipe, error)
	FindRecipesFn        func(ctx context.Context, filter ladle.RecipeFilter) ([]*ladle.StoredRecipe, error)
	FindSimilarRecipesFn func(ctx context.Context, title string, limit int) ([]*ladle.StoredRecipe, error)
	DeleteRecipeFn       func(ctx context.Context, id string) error
}

func (s *RecipeService) CreateRecipe(ctx context.Context, rec *ladle.StoredRecipe) error {
	return s.CreateRecipeFn(ctx, rec)
}

func (s *RecipeService) FindRecipeByID(ctx context.Context, id string) (*ladle.StoredRecipe, error) {
	return s.FindRecipeByIDFn(ctx, id)
}

func (s *RecipeService) FindRecipes(ctx context.Context, filter ladle.RecipeFilter) ([]*ladle.StoredRecipe, error) {
	return s.FindRecipesFn(ctx, filter)
}

func (s *RecipeService) FindSimilarRecipes(ctx context.Context, title string, limit int) ([]*ladle.StoredRecipe, error) {
	return s.FindSimilarRecipesFn(ctx, title, limit)
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	return s.DeleteRecipeFn(ctx, id)
}
