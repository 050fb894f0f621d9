package ladle

import (
	"context"
	"time"
)

// Ingredient is a persistence-facing ingredient row. Quantity and Unit may
// be empty when the source string carried no parsable amount.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// PreparationStep is a single step of the preparation, optionally titled.
type PreparationStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NutritionFacts holds nutrition values normalized to a 100-gram basis.
// It is only produced when the scraped record carried an explicit serving
// size; guessing between per-serving and per-100g readings is unsafe.
type NutritionFacts struct {
	EnergyKcal   float64  `json:"energyKcal"`
	EnergyKj     float64  `json:"energyKj"`
	Carbohydrate *float64 `json:"carbohydrate,omitempty"`
	Protein      *float64 `json:"protein,omitempty"`
	Fat          *float64 `json:"fat,omitempty"`
	SaturatedFat *float64 `json:"saturatedFat,omitempty"`
	Sugar        *float64 `json:"sugar,omitempty"`
	Fiber        *float64 `json:"fiber,omitempty"`
	Sodium       *float64 `json:"sodium,omitempty"`
	Cholesterol  *float64 `json:"cholesterol,omitempty"`
}

// Tag is a deduplicated recipe tag.
type Tag struct {
	Name string `json:"name"`
}

// ConvertedRecipe is the persistence-facing shape of a scraped recipe.
// It is constructed once per scrape call and never mutated afterward.
type ConvertedRecipe struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`

	// Persons is the number of servings, always positive.
	Persons int `json:"persons"`

	// Time is the recipe duration in minutes, 0 when the source had none.
	Time int `json:"time"`

	Ingredients []Ingredient `json:"ingredients"`

	// SkippedIngredients holds raw strings that matched an ignore pattern
	// and were intentionally excluded from Ingredients.
	SkippedIngredients []string `json:"skippedIngredients"`

	Preparation []PreparationStep `json:"preparation"`
	Nutrition   *NutritionFacts   `json:"nutrition,omitempty"`
	Tags        []Tag             `json:"tags"`
}

// StoredRecipe wraps a converted recipe with its storage identity.
type StoredRecipe struct {
	ID          string          `json:"id"`
	SourceURL   string          `json:"sourceUrl"`
	ContentHash string          `json:"contentHash"`
	CreatedAt   time.Time       `json:"createdAt"`
	Recipe      ConvertedRecipe `json:"recipe"`
}

// Validate returns an error if the stored recipe contains invalid fields.
func (r *StoredRecipe) Validate() error {
	if r.SourceURL == "" {
		return Errorf(ETPARSE, "recipe source URL required")
	}
	if r.Recipe.Title == "" {
		return Errorf(ETPARSE, "recipe title required")
	}
	return nil
}

// RecipeFilter represents a filter for FindRecipes.
type RecipeFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`
	Title     *string `json:"title"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecipeService represents a service for persisting converted recipes.
type RecipeService interface {
	// CreateRecipe stores a new recipe, assigning its ID and content hash.
	CreateRecipe(ctx context.Context, rec *StoredRecipe) error

	// FindRecipeByID retrieves a recipe by ID.
	// Returns an error of type NoRecipeFoundError if it does not exist.
	FindRecipeByID(ctx context.Context, id string) (*StoredRecipe, error)

	// FindRecipes retrieves recipes matching the filter, newest first.
	FindRecipes(ctx context.Context, filter RecipeFilter) ([]*StoredRecipe, error)

	// FindSimilarRecipes retrieves up to limit recipes whose titles are
	// most similar to the given title, best match first.
	FindSimilarRecipes(ctx context.Context, title string, limit int) ([]*StoredRecipe, error)

	// DeleteRecipe permanently removes a recipe and its child rows.
	DeleteRecipe(ctx context.Context, id string) error
}
