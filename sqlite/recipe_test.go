package sqlite_test

import (
	"context"
	"testing"

	"github.com/ladle-app/ladle"
	"github.com/ladle-app/ladle/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MustOpenDB opens an in-memory database for testing.
func MustOpenDB(tb testing.TB) *sqlite.DB {
	tb.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(tb, db.Open())
	tb.Cleanup(func() {
		assert.NoError(tb, db.Close())
	})
	return db
}

func storedRecipe(title, sourceURL string) *ladle.StoredRecipe {
	return &ladle.StoredRecipe{
		SourceURL: sourceURL,
		Recipe: ladle.ConvertedRecipe{
			Title:       title,
			Description: "A test recipe.",
			Image:       "https://example.com/dish.jpg",
			Persons:     4,
			Time:        45,
			Ingredients: []ladle.Ingredient{
				{Name: "flour", Quantity: "2", Unit: "cups"},
				{Name: "eggs", Quantity: "3"},
			},
			SkippedIngredients: []string{"water"},
			Preparation: []ladle.PreparationStep{
				{Title: "Dough", Description: "Mix.\nKnead."},
				{Description: "Bake."},
			},
			Nutrition: &ladle.NutritionFacts{
				EnergyKcal: 200,
				EnergyKj:   836.8,
				Protein:    ladle.Float(5),
			},
			Tags: []ladle.Tag{{Name: "dessert"}, {Name: "baked"}},
		},
	}
}

func TestRecipeService_CreateRecipe(t *testing.T) {
	t.Parallel()

	t.Run("assigns identity and round-trips", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(MustOpenDB(t))
		rec := storedRecipe("Chocolate Cake", "https://example.com/recipe/1")

		require.NoError(t, s.CreateRecipe(context.Background(), rec))
		assert.NotEmpty(t, rec.ID)
		assert.NotEmpty(t, rec.ContentHash)
		assert.False(t, rec.CreatedAt.IsZero())

		got, err := s.FindRecipeByID(context.Background(), rec.ID)
		require.NoError(t, err)

		assert.Equal(t, rec.SourceURL, got.SourceURL)
		assert.Equal(t, rec.ContentHash, got.ContentHash)
		assert.Equal(t, rec.Recipe.Title, got.Recipe.Title)
		assert.Equal(t, rec.Recipe.Persons, got.Recipe.Persons)
		assert.Equal(t, rec.Recipe.Time, got.Recipe.Time)
		assert.Equal(t, rec.Recipe.Ingredients, got.Recipe.Ingredients)
		assert.Equal(t, rec.Recipe.SkippedIngredients, got.Recipe.SkippedIngredients)
		assert.Equal(t, rec.Recipe.Preparation, got.Recipe.Preparation)
		assert.Equal(t, rec.Recipe.Tags, got.Recipe.Tags)
		require.NotNil(t, got.Recipe.Nutrition)
		assert.Equal(t, 200.0, got.Recipe.Nutrition.EnergyKcal)
		require.NotNil(t, got.Recipe.Nutrition.Protein)
		assert.Equal(t, 5.0, *got.Recipe.Nutrition.Protein)
		assert.Nil(t, got.Recipe.Nutrition.Fat)
	})

	t.Run("same content yields the same hash", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(MustOpenDB(t))
		a := storedRecipe("Cake", "https://example.com/a")
		b := storedRecipe("Cake", "https://example.com/b")

		require.NoError(t, s.CreateRecipe(context.Background(), a))
		require.NoError(t, s.CreateRecipe(context.Background(), b))
		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("validation failures", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(MustOpenDB(t))

		err := s.CreateRecipe(context.Background(), &ladle.StoredRecipe{
			Recipe: ladle.ConvertedRecipe{Title: "No Source"},
		})
		require.Error(t, err)

		err = s.CreateRecipe(context.Background(), &ladle.StoredRecipe{
			SourceURL: "https://example.com/r",
		})
		require.Error(t, err)
	})

	t.Run("recipe without nutrition", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(MustOpenDB(t))
		rec := storedRecipe("Plain", "https://example.com/plain")
		rec.Recipe.Nutrition = nil

		require.NoError(t, s.CreateRecipe(context.Background(), rec))

		got, err := s.FindRecipeByID(context.Background(), rec.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Recipe.Nutrition)
	})
}

func TestRecipeService_FindRecipeByID(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(MustOpenDB(t))
		_, err := s.FindRecipeByID(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, ladle.ETNORECIPE, ladle.ErrorType(err))
	})
}

func TestRecipeService_FindRecipes(t *testing.T) {
	t.Parallel()

	t.Run("filters by source URL and title", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(MustOpenDB(t))
		ctx := context.Background()
		require.NoError(t, s.CreateRecipe(ctx, storedRecipe("Chocolate Cake", "https://example.com/1")))
		require.NoError(t, s.CreateRecipe(ctx, storedRecipe("Carrot Soup", "https://example.com/2")))
		require.NoError(t, s.CreateRecipe(ctx, storedRecipe("Chocolate Mousse", "https://other.example/3")))

		got, err := s.FindRecipes(ctx, ladle.RecipeFilter{SourceURL: ladle.String("https://example.com/2")})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Carrot Soup", got[0].Recipe.Title)

		got, err = s.FindRecipes(ctx, ladle.RecipeFilter{Title: ladle.String("Chocolate")})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		got, err = s.FindRecipes(ctx, ladle.RecipeFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("pagination", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(MustOpenDB(t))
		ctx := context.Background()
		for _, url := range []string{"https://e/1", "https://e/2", "https://e/3"} {
			require.NoError(t, s.CreateRecipe(ctx, storedRecipe("Cake", url)))
		}

		got, err := s.FindRecipes(ctx, ladle.RecipeFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		got, err = s.FindRecipes(ctx, ladle.RecipeFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestRecipeService_FindSimilarRecipes(t *testing.T) {
	t.Parallel()

	s := sqlite.NewRecipeService(MustOpenDB(t))
	ctx := context.Background()
	require.NoError(t, s.CreateRecipe(ctx, storedRecipe("Chocolate Cake", "https://e/1")))
	require.NoError(t, s.CreateRecipe(ctx, storedRecipe("Chocolate Cakes", "https://e/2")))
	require.NoError(t, s.CreateRecipe(ctx, storedRecipe("Beef Stew", "https://e/3")))

	got, err := s.FindSimilarRecipes(ctx, "chocolate cake", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Chocolate Cake", got[0].Recipe.Title)
	assert.Equal(t, "Chocolate Cakes", got[1].Recipe.Title)

	got, err = s.FindSimilarRecipes(ctx, "anything", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecipeService_DeleteRecipe(t *testing.T) {
	t.Parallel()

	t.Run("removes the recipe and its children", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(MustOpenDB(t))
		ctx := context.Background()
		rec := storedRecipe("Cake", "https://example.com/1")
		require.NoError(t, s.CreateRecipe(ctx, rec))

		require.NoError(t, s.DeleteRecipe(ctx, rec.ID))

		_, err := s.FindRecipeByID(ctx, rec.ID)
		require.Error(t, err)
		assert.Equal(t, ladle.ETNORECIPE, ladle.ErrorType(err))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(MustOpenDB(t))
		err := s.DeleteRecipe(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, ladle.ETNORECIPE, ladle.ErrorType(err))
	})
}
