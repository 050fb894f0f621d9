// Package goquery implements the enhancement stage: a deterministic
// post-processing pass that repairs and augments a baseline record using
// only the original markup and the record itself. The heuristics target
// sites with poor schema.org data and rely on small, fixed sets of known
// id/class markers; they are pinned by tests and intentionally not
// generalized into a selector engine.
package goquery

import (
	"html"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/ladle-app/ladle"
	"github.com/ladle-app/ladle/jsonld"
)

// Ensure Enhancer implements ladle.Enhancer at compile time.
var _ ladle.Enhancer = (*Enhancer)(nil)

// Enhancer applies the enhancement pipeline. Enhance is pure: the baseline
// record is cloned, never mutated, and any enhancement that fails
// internally is skipped, keeping the baseline value for that field.
type Enhancer struct{}

// NewEnhancer creates a new Enhancer.
func NewEnhancer() *Enhancer {
	return &Enhancer{}
}

// Enhance returns a corrected and augmented copy of the baseline record.
// Steps run in a fixed order: entity decoding, title cleanup, the
// description-vs-ingredients heuristic, keyword sourcing and cleaning,
// structured ingredient/instruction re-extraction (gap fill only),
// nutrition serving-size inference, and the structured-data image fallback.
func (e *Enhancer) Enhance(markup string, baseline *ladle.ScrapedRecipe) *ladle.ScrapedRecipe {
	if baseline == nil {
		return nil
	}
	rec := baseline.Clone()

	decodeEntities(rec)
	rec.Title = cleanTitle(rec.Title)
	rec.Description = cleanDescription(rec.Description, rec.Ingredients)
	rec.Keywords = sourceKeywords(markup, rec)

	var doc *goquery.Document
	if d, err := goquery.NewDocumentFromReader(strings.NewReader(markup)); err == nil {
		doc = d
	}

	if doc != nil && len(rec.ParsedIngredients) == 0 {
		safely(func() {
			rec.ParsedIngredients = extractStructuredIngredients(doc)
		})
	}
	if doc != nil && len(rec.ParsedInstructions) == 0 {
		safely(func() {
			rec.ParsedInstructions = extractStructuredInstructions(doc)
		})
	}
	if doc != nil {
		safely(func() {
			rec.Nutrients = inferServingSize(doc, rec.Nutrients)
		})
	}
	if rec.Image == nil || strings.Contains(strings.ToLower(*rec.Image), "placeholder") {
		safely(func() {
			if img := imageFromStructuredData(markup); img != nil {
				rec.Image = img
			}
		})
	}

	return rec
}

// safely runs a single enhancement, swallowing panics so one failing
// heuristic never poisons the rest of the record.
func safely(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

// decodeEntities decodes HTML entities in every free-text field
// independently. Null inputs stay null; already-clean text is unchanged,
// which keeps the pass idempotent.
func decodeEntities(rec *ladle.ScrapedRecipe) {
	rec.Title = decodePtr(rec.Title)
	rec.Description = decodePtr(rec.Description)
	rec.Instructions = decodePtr(rec.Instructions)
	for i, ing := range rec.Ingredients {
		rec.Ingredients[i] = html.UnescapeString(ing)
	}
	for i, step := range rec.InstructionsList {
		rec.InstructionsList[i] = html.UnescapeString(step)
	}
}

func decodePtr(s *string) *string {
	if s == nil {
		return nil
	}
	return ladle.String(html.UnescapeString(*s))
}

// cleanTitle capitalizes the first character of an entirely lower-case
// title; mixed-case titles are left alone.
func cleanTitle(title *string) *string {
	if title == nil {
		return nil
	}
	t := *title
	if t == "" || t != strings.ToLower(t) {
		return title
	}
	runes := []rune(t)
	runes[0] = unicode.ToUpper(runes[0])
	return ladle.String(string(runes))
}

// cleanDescription discards descriptions that are actually ingredient
// lists. Each ingredient's pre-parenthesis name is removed from a
// lower-cased copy of the description; if fewer than 20 alphanumeric
// characters remain, the description is judged to be an ingredient dump.
func cleanDescription(description *string, ingredients []string) *string {
	if description == nil || len(ingredients) == 0 {
		return description
	}

	cleaned := strings.ToLower(*description)
	for _, ing := range ingredients {
		if name := ingredientBaseName(ing); name != "" {
			cleaned = strings.ReplaceAll(cleaned, name, "")
		}
	}

	var remaining int
	for _, r := range cleaned {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			remaining++
		}
	}
	if remaining < 20 {
		return nil
	}
	return description
}

// sourceKeywords prefers tags found in the page's embedded payloads over
// the baseline's own keywords, then removes keywords that duplicate the
// title or an ingredient name. An empty result becomes nil.
func sourceKeywords(markup string, rec *ladle.ScrapedRecipe) []string {
	keywords := jsonld.TagsFromMarkup(markup)
	if len(keywords) == 0 {
		keywords = rec.Keywords
	}
	if len(keywords) == 0 {
		return nil
	}

	ingredientNames := make(map[string]bool, len(rec.Ingredients))
	for _, ing := range rec.Ingredients {
		if name := ingredientBaseName(ing); name != "" {
			ingredientNames[name] = true
		}
	}

	var titleLower string
	if rec.Title != nil {
		titleLower = strings.ToLower(*rec.Title)
	}

	var cleaned []string
	for _, kw := range keywords {
		lower := strings.ToLower(kw)
		if lower == titleLower || ingredientNames[lower] {
			continue
		}
		cleaned = append(cleaned, kw)
	}
	return cleaned
}

// ingredientBaseName lower-cases an ingredient string and trims everything
// from the first parenthesis on.
func ingredientBaseName(ing string) string {
	name, _, _ := strings.Cut(strings.ToLower(ing), "(")
	return strings.TrimSpace(name)
}

// imageFromStructuredData recovers an image URL from the page's embedded
// Recipe object, rejecting placeholder assets.
func imageFromStructuredData(markup string) *string {
	recipe, ok := jsonld.RecipeFromMarkup(markup)
	if !ok {
		return nil
	}
	img := jsonld.ImageValue(recipe["image"])
	if img == nil || strings.Contains(strings.ToLower(*img), "placeholder") {
		return nil
	}
	return img
}
