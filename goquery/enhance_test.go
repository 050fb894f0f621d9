package goquery_test

import (
	"testing"

	"github.com/ladle-app/ladle"
	ladlequery "github.com/ladle-app/ladle/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emptyPage = `<!DOCTYPE html><html><body></body></html>`

func TestEnhancer_Enhance(t *testing.T) {
	t.Parallel()

	enhancer := ladlequery.NewEnhancer()

	t.Run("decodes HTML entities independently per field", func(t *testing.T) {
		t.Parallel()

		baseline := &ladle.ScrapedRecipe{
			Title:            ladle.String("Macaroni &amp; Cheese"),
			Description:      ladle.String("Rich &quot;comfort&quot; food"),
			Ingredients:      []string{"200&nbsp;g cheddar"},
			Instructions:     ladle.String("Pre&#8209;heat the oven"),
			InstructionsList: []string{"Pre&#8209;heat the oven"},
		}

		got := enhancer.Enhance(emptyPage, baseline)

		assert.Equal(t, "Macaroni & Cheese", *got.Title)
		assert.Equal(t, `Rich "comfort" food`, *got.Description)
		assert.Equal(t, "200\u00a0g cheddar", got.Ingredients[0])
		assert.Equal(t, "Pre‑heat the oven", *got.Instructions)
		// Baseline is untouched.
		assert.Equal(t, "Macaroni &amp; Cheese", *baseline.Title)
	})

	t.Run("capitalizes all-lowercase titles only", func(t *testing.T) {
		t.Parallel()

		got := enhancer.Enhance(emptyPage, &ladle.ScrapedRecipe{Title: ladle.String("chocolate cake")})
		assert.Equal(t, "Chocolate cake", *got.Title)

		got = enhancer.Enhance(emptyPage, &ladle.ScrapedRecipe{Title: ladle.String("Chocolate Cake")})
		assert.Equal(t, "Chocolate Cake", *got.Title)
	})

	t.Run("discards descriptions that are ingredient lists", func(t *testing.T) {
		t.Parallel()

		baseline := &ladle.ScrapedRecipe{
			Description: ladle.String("flour sugar butter"),
			Ingredients: []string{"flour", "sugar", "butter"},
		}
		got := enhancer.Enhance(emptyPage, baseline)
		assert.Nil(t, got.Description)
	})

	t.Run("keeps genuine descriptions", func(t *testing.T) {
		t.Parallel()

		desc := "A rich, buttery cake the whole family will love on a rainy afternoon."
		baseline := &ladle.ScrapedRecipe{
			Description: ladle.String(desc),
			Ingredients: []string{"flour", "sugar", "butter"},
		}
		got := enhancer.Enhance(emptyPage, baseline)
		require.NotNil(t, got.Description)
		assert.Equal(t, desc, *got.Description)
	})

	t.Run("counts non-ASCII letters when judging descriptions", func(t *testing.T) {
		t.Parallel()

		// Entirely non-ASCII, but well over 20 letters once the
		// ingredient names are removed.
		desc := "Παραδοσιακός μουσακάς με μελιτζάνες και κρέμα μπεσαμέλ"
		baseline := &ladle.ScrapedRecipe{
			Description: ladle.String(desc),
			Ingredients: []string{"μελιτζάνες", "κρέμα"},
		}
		got := enhancer.Enhance(emptyPage, baseline)
		require.NotNil(t, got.Description)
		assert.Equal(t, desc, *got.Description)
	})

	t.Run("removes keywords duplicating title or ingredients", func(t *testing.T) {
		t.Parallel()

		baseline := &ladle.ScrapedRecipe{
			Title:       ladle.String("Carrot Soup"),
			Ingredients: []string{"Carrots (500g)", "onion"},
			Keywords:    []string{"carrot soup", "carrots", "winter", "onion"},
		}
		got := enhancer.Enhance(emptyPage, baseline)
		assert.Equal(t, []string{"winter"}, got.Keywords)
	})

	t.Run("empty keyword result becomes nil", func(t *testing.T) {
		t.Parallel()

		baseline := &ladle.ScrapedRecipe{
			Title:    ladle.String("Toast"),
			Keywords: []string{"toast"},
		}
		got := enhancer.Enhance(emptyPage, baseline)
		assert.Nil(t, got.Keywords)
	})

	t.Run("prefers navigation blob tags over baseline keywords", func(t *testing.T) {
		t.Parallel()

		page := `<!DOCTYPE html><html><head>
<script id="__NEXT_DATA__" type="application/json">{"props": {"tags": ["comfort", "baked"]}}</script>
</head><body></body></html>`

		baseline := &ladle.ScrapedRecipe{Keywords: []string{"stale"}}
		got := enhancer.Enhance(page, baseline)
		assert.Equal(t, []string{"comfort", "baked"}, got.Keywords)
	})

	t.Run("falls back to structured data for a missing image", func(t *testing.T) {
		t.Parallel()

		page := `<!DOCTYPE html><html><head>
<script type="application/ld+json">{"@type": "Recipe", "image": "https://example.com/dish.jpg"}</script>
</head><body></body></html>`

		got := enhancer.Enhance(page, &ladle.ScrapedRecipe{})
		require.NotNil(t, got.Image)
		assert.Equal(t, "https://example.com/dish.jpg", *got.Image)
	})

	t.Run("rejects placeholder images", func(t *testing.T) {
		t.Parallel()

		page := `<!DOCTYPE html><html><head>
<script type="application/ld+json">{"@type": "Recipe", "image": "https://cdn.example.com/Placeholder.png"}</script>
</head><body></body></html>`

		got := enhancer.Enhance(page, &ladle.ScrapedRecipe{})
		assert.Nil(t, got.Image)
	})

	t.Run("keeps existing image", func(t *testing.T) {
		t.Parallel()

		page := `<!DOCTYPE html><html><head>
<script type="application/ld+json">{"@type": "Recipe", "image": "https://example.com/other.jpg"}</script>
</head><body></body></html>`

		baseline := &ladle.ScrapedRecipe{Image: ladle.String("https://example.com/mine.jpg")}
		got := enhancer.Enhance(page, baseline)
		assert.Equal(t, "https://example.com/mine.jpg", *got.Image)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		page := `<!DOCTYPE html><html><head>
<script type="application/ld+json">{"@type": "Recipe", "image": "https://example.com/dish.jpg"}</script>
</head><body></body></html>`

		baseline := &ladle.ScrapedRecipe{
			Title:       ladle.String("apple pie &amp; custard"),
			Description: ladle.String("A long and genuinely descriptive text about this wonderful dessert."),
			Ingredients: []string{"apples", "sugar"},
			Keywords:    []string{"dessert", "apples"},
		}

		once := enhancer.Enhance(page, baseline)
		twice := enhancer.Enhance(page, once)
		assert.Equal(t, once, twice)
	})

	t.Run("nil baseline stays nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, enhancer.Enhance(emptyPage, nil))
	})
}
