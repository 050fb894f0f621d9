package jsonld

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ladle-app/ladle"
	"github.com/ladle-app/ladle/units"
)

// Ensure Backend implements ladle.Backend at compile time.
var _ ladle.Backend = (*Backend)(nil)

// Backend is the generic extraction backend. It maps the first embedded
// schema.org Recipe object onto the canonical record and is the fallback
// used when no site-aware backend is available.
type Backend struct{}

// NewBackend creates a new generic backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Name identifies the backend.
func (b *Backend) Name() string {
	return "jsonld"
}

// Extract locates an embedded Recipe object in the markup and maps its
// fields onto the canonical record. Absent or mismatched-type fields stay
// null. Never panics across this boundary: unexpected failures during
// mapping are reported as ParseError.
func (b *Backend) Extract(_ context.Context, html, pageURL string, _ bool) (rec *ladle.ScrapedRecipe, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec = nil
			err = ladle.Errorf(ladle.ETPARSE, "recipe mapping failed: %v", r)
		}
	}()

	recipe, ok := RecipeFromMarkup(html)
	if !ok {
		return nil, ladle.Errorf(ladle.ETNORECIPE, "no structured recipe found at %s", pageURL)
	}

	return mapRecipe(recipe, html, pageURL), nil
}

// mapRecipe converts a schema.org Recipe object into a ScrapedRecipe.
func mapRecipe(m map[string]any, html, pageURL string) *ladle.ScrapedRecipe {
	rec := &ladle.ScrapedRecipe{
		Title:       optString(m["name"]),
		Description: optString(m["description"]),
	}

	rec.CanonicalURL = optString(m["url"])
	if rec.CanonicalURL == nil && pageURL != "" {
		rec.CanonicalURL = ladle.String(pageURL)
	}

	rec.Ingredients = stringList(m["recipeIngredient"])

	rec.InstructionsList = instructionList(m["recipeInstructions"])
	if len(rec.InstructionsList) > 0 {
		rec.Instructions = ladle.String(strings.Join(rec.InstructionsList, "\n"))
	}

	rec.TotalTime = duration(m["totalTime"])
	rec.PrepTime = duration(m["prepTime"])
	rec.CookTime = duration(m["cookTime"])

	rec.Yields = yields(m["recipeYield"])
	rec.Image = ImageValue(m["image"])
	rec.Author = author(m["author"])
	rec.SiteName = author(m["publisher"])
	rec.Language = optString(m["inLanguage"])

	rec.Category = firstStringValue(m["recipeCategory"])
	rec.Cuisine = firstStringValue(m["recipeCuisine"])
	rec.CookingMethod = firstStringValue(m["cookingMethod"])

	rec.Keywords = keywords(m["keywords"])
	if len(rec.Keywords) == 0 {
		rec.Keywords = TagsFromMarkup(html)
	}

	rec.DietaryRestrictions = diets(m["suitableForDiet"])

	if rating, ok := m["aggregateRating"].(map[string]any); ok {
		rec.Ratings = optFloat(rating["ratingValue"])
		rec.RatingsCount = optInt(rating["ratingCount"])
		if rec.RatingsCount == nil {
			rec.RatingsCount = optInt(rating["reviewCount"])
		}
	}

	rec.Nutrients = nutrients(m["nutrition"])
	rec.Host = hostOf(pageURL)

	return rec
}

// hostOf extracts the authority component of a URL, with the common "www."
// prefix stripped. Unparsable URLs yield nil.
func hostOf(pageURL string) *string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return nil
	}
	return ladle.String(strings.TrimPrefix(u.Host, "www."))
}

// optString returns the value as a non-empty string, or nil.
func optString(v any) *string {
	if s, ok := v.(string); ok {
		if s = strings.TrimSpace(s); s != "" {
			return ladle.String(s)
		}
	}
	return nil
}

// optFloat coerces a JSON number or numeric string, or nil.
func optFloat(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return ladle.Float(n)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return ladle.Float(f)
		}
	}
	return nil
}

// optInt coerces an integer-valued JSON number or numeric string, or nil.
func optInt(v any) *int {
	switch n := v.(type) {
	case float64:
		return ladle.Int(int(n))
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return ladle.Int(i)
		}
	}
	return nil
}

// stringList filters an array down to its string members; a bare string
// becomes a single-element list.
func stringList(v any) []string {
	switch val := v.(type) {
	case string:
		if val != "" {
			return []string{val}
		}
	case []any:
		var out []string
		for _, item := range val {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// instructionList flattens recipeInstructions into an ordered step list.
// A bare string splits into its non-blank lines. Array entries contribute
// plain strings as-is; objects contribute their text then name, plus the
// text of each nested itemListElement entry, which flattens HowToSection
// groupings into a single list.
func instructionList(v any) []string {
	switch val := v.(type) {
	case string:
		var steps []string
		for _, line := range strings.Split(val, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				steps = append(steps, line)
			}
		}
		return steps
	case []any:
		var steps []string
		for _, item := range val {
			switch entry := item.(type) {
			case string:
				if entry != "" {
					steps = append(steps, entry)
				}
			case map[string]any:
				if s := optString(entry["text"]); s != nil {
					steps = append(steps, *s)
				}
				if s := optString(entry["name"]); s != nil {
					steps = append(steps, *s)
				}
				if nested, ok := entry["itemListElement"].([]any); ok {
					for _, sub := range nested {
						if obj, ok := sub.(map[string]any); ok {
							if s := optString(obj["text"]); s != nil {
								steps = append(steps, *s)
							}
						}
					}
				}
			}
		}
		return steps
	}
	return nil
}

// duration parses an ISO-8601-style duration value into minutes.
func duration(v any) *int {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	minutes, ok := units.ParseISODuration(s)
	if !ok {
		return nil
	}
	return ladle.Int(minutes)
}

// yields renders recipeYield: strings as-is, numbers as "<n> servings",
// arrays via their first element under the same rules.
func yields(v any) *string {
	switch val := v.(type) {
	case string:
		return optString(val)
	case float64:
		return ladle.String(fmt.Sprintf("%s servings", strconv.FormatFloat(val, 'f', -1, 64)))
	case []any:
		if len(val) > 0 {
			return yields(val[0])
		}
	}
	return nil
}

// ImageValue resolves a schema.org image value: a string as-is, an object
// via its url field, an array via its first element under either rule.
func ImageValue(v any) *string {
	switch val := v.(type) {
	case string:
		return optString(val)
	case map[string]any:
		return optString(val["url"])
	case []any:
		if len(val) > 0 {
			return ImageValue(val[0])
		}
	}
	return nil
}

// author resolves a schema.org person/organization value: a string as-is,
// an object via its name, an array via its first element under either rule.
func author(v any) *string {
	switch val := v.(type) {
	case string:
		return optString(val)
	case map[string]any:
		return optString(val["name"])
	case []any:
		if len(val) > 0 {
			return author(val[0])
		}
	}
	return nil
}

// firstStringValue returns a string as-is or the first string member of an
// array.
func firstStringValue(v any) *string {
	switch val := v.(type) {
	case string:
		return optString(val)
	case []any:
		for _, item := range val {
			if s, ok := item.(string); ok {
				return optString(s)
			}
		}
	}
	return nil
}

// keywords splits a comma-separated string or filters an array to strings.
func keywords(v any) []string {
	switch val := v.(type) {
	case string:
		var out []string
		for _, kw := range strings.Split(val, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				out = append(out, kw)
			}
		}
		return out
	case []any:
		return stringList(val)
	}
	return nil
}

// diets normalizes suitableForDiet values, stripping schema.org prefixes.
func diets(v any) []string {
	var out []string
	for _, s := range stringList(v) {
		s = strings.TrimPrefix(s, "https://schema.org/")
		s = strings.TrimPrefix(s, "http://schema.org/")
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// nutrients copies the recognized nutrient keys whose values are strings or
// numbers. Returns nil when none are present.
func nutrients(v any) ladle.Nutrients {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make(ladle.Nutrients)
	for _, key := range ladle.RecognizedNutrients {
		switch val := obj[key].(type) {
		case string:
			if val != "" {
				out[key] = val
			}
		case float64:
			out[key] = strconv.FormatFloat(val, 'f', -1, 64)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
