package ladle

// Recognized nutrient keys. Backends copy only these keys into a record's
// Nutrients map; anything else a site reports is dropped.
const (
	NutrientCalories     = "calories"
	NutrientCarbohydrate = "carbohydrateContent"
	NutrientProtein      = "proteinContent"
	NutrientFat          = "fatContent"
	NutrientFiber        = "fiberContent"
	NutrientSodium       = "sodiumContent"
	NutrientSugar        = "sugarContent"
	NutrientSaturatedFat = "saturatedFatContent"
	NutrientCholesterol  = "cholesterolContent"
	NutrientServingSize  = "servingSize"
)

// RecognizedNutrients lists every nutrient key a backend may emit.
var RecognizedNutrients = []string{
	NutrientCalories,
	NutrientCarbohydrate,
	NutrientProtein,
	NutrientFat,
	NutrientFiber,
	NutrientSodium,
	NutrientSugar,
	NutrientSaturatedFat,
	NutrientCholesterol,
	NutrientServingSize,
}

// Nutrients maps a recognized nutrient key to its raw string value as
// scraped from the page (e.g. "240 kcal", "12 g").
type Nutrients map[string]string

// ParsedIngredient is an ingredient whose quantity, unit and name were
// explicitly structured in the source markup.
type ParsedIngredient struct {
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Name     string `json:"name"`
}

// InstructionGroup is a titled group of instruction steps, produced when
// the source markup groups its preparation steps under headings.
type InstructionGroup struct {
	Title        *string  `json:"title"`
	Instructions []string `json:"instructions"`
}

// RecipeLink is a hyperlink found within the recipe content.
type RecipeLink struct {
	Href string `json:"href"`
	Text string `json:"text,omitempty"`
}

// ScrapedRecipe is the canonical intermediate record produced by an
// extraction backend. Every field is independently optional: a record with
// only a title is valid. Ingredient and instruction ordering is significant
// and preserved end-to-end. Once produced by a backend the record is treated
// as immutable; enhancement returns a new record instead of mutating.
type ScrapedRecipe struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`

	Ingredients       []string           `json:"ingredients"`
	ParsedIngredients []ParsedIngredient `json:"parsedIngredients,omitempty"`

	Instructions       *string            `json:"instructions"`
	InstructionsList   []string           `json:"instructionsList,omitempty"`
	ParsedInstructions []InstructionGroup `json:"parsedInstructions,omitempty"`

	// Durations in minutes.
	TotalTime *int `json:"totalTime"`
	PrepTime  *int `json:"prepTime"`
	CookTime  *int `json:"cookTime"`

	Yields *string `json:"yields"`
	Image  *string `json:"image"`

	Host         *string `json:"host"`
	CanonicalURL *string `json:"canonicalUrl"`
	SiteName     *string `json:"siteName"`
	Author       *string `json:"author"`
	Language     *string `json:"language"`

	Category      *string  `json:"category"`
	Cuisine       *string  `json:"cuisine"`
	CookingMethod *string  `json:"cookingMethod"`
	Keywords      []string `json:"keywords,omitempty"`

	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`

	Ratings      *float64 `json:"ratings"`
	RatingsCount *int     `json:"ratingsCount"`

	Nutrients Nutrients    `json:"nutrients,omitempty"`
	Equipment []string     `json:"equipment,omitempty"`
	Links     []RecipeLink `json:"links,omitempty"`
}

// Clone returns a deep copy of the record. Enhancement passes operate on a
// clone so the baseline produced by a backend is never mutated.
func (r *ScrapedRecipe) Clone() *ScrapedRecipe {
	if r == nil {
		return nil
	}
	dup := *r

	dup.Title = clonePtr(r.Title)
	dup.Description = clonePtr(r.Description)
	dup.Instructions = clonePtr(r.Instructions)
	dup.TotalTime = clonePtr(r.TotalTime)
	dup.PrepTime = clonePtr(r.PrepTime)
	dup.CookTime = clonePtr(r.CookTime)
	dup.Yields = clonePtr(r.Yields)
	dup.Image = clonePtr(r.Image)
	dup.Host = clonePtr(r.Host)
	dup.CanonicalURL = clonePtr(r.CanonicalURL)
	dup.SiteName = clonePtr(r.SiteName)
	dup.Author = clonePtr(r.Author)
	dup.Language = clonePtr(r.Language)
	dup.Category = clonePtr(r.Category)
	dup.Cuisine = clonePtr(r.Cuisine)
	dup.CookingMethod = clonePtr(r.CookingMethod)
	dup.Ratings = clonePtr(r.Ratings)
	dup.RatingsCount = clonePtr(r.RatingsCount)

	dup.Ingredients = cloneSlice(r.Ingredients)
	dup.ParsedIngredients = cloneSlice(r.ParsedIngredients)
	dup.InstructionsList = cloneSlice(r.InstructionsList)
	dup.Keywords = cloneSlice(r.Keywords)
	dup.DietaryRestrictions = cloneSlice(r.DietaryRestrictions)
	dup.Equipment = cloneSlice(r.Equipment)
	dup.Links = cloneSlice(r.Links)

	if r.ParsedInstructions != nil {
		dup.ParsedInstructions = make([]InstructionGroup, len(r.ParsedInstructions))
		for i, g := range r.ParsedInstructions {
			dup.ParsedInstructions[i] = InstructionGroup{
				Title:        clonePtr(g.Title),
				Instructions: cloneSlice(g.Instructions),
			}
		}
	}

	if r.Nutrients != nil {
		dup.Nutrients = make(Nutrients, len(r.Nutrients))
		for k, v := range r.Nutrients {
			dup.Nutrients[k] = v
		}
	}

	return &dup
}

// String returns a pointer to s. Convenience for building optional fields.
func String(s string) *string { return &s }

// Int returns a pointer to n.
func Int(n int) *int { return &n }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	dup := make([]T, len(s))
	copy(dup, s)
	return dup
}
