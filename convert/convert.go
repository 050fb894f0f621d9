package convert

import (
	"github.com/ladle-app/ladle"
	"github.com/ladle-app/ladle/units"
)

// DefaultPersons is the serving count used when the scraped yield text
// contains no number and the caller set none.
const DefaultPersons = 4

// Options configures a conversion run.
type Options struct {
	// DefaultPersons overrides the serving-count fallback when positive.
	DefaultPersons int

	// Ignore filters out pantry items the caller does not want stored.
	Ignore IgnoreLists
}

// Recipe converts a scraped record into the persistence-facing shape.
func Recipe(scraped *ladle.ScrapedRecipe, opts Options) *ladle.ConvertedRecipe {
	if scraped == nil {
		return nil
	}

	def := opts.DefaultPersons
	if def <= 0 {
		def = DefaultPersons
	}

	rec := &ladle.ConvertedRecipe{
		Title:       deref(scraped.Title),
		Description: deref(scraped.Description),
		Image:       CleanImageURL(deref(scraped.Image)),
		Persons:     units.ParseServings(deref(scraped.Yields), def),
	}

	switch {
	case scraped.TotalTime != nil:
		rec.Time = *scraped.TotalTime
	case scraped.PrepTime != nil:
		rec.Time = *scraped.PrepTime
	}

	rec.Ingredients, rec.SkippedIngredients = Ingredients(scraped.Ingredients, scraped.ParsedIngredients, opts.Ignore)
	rec.Preparation = Preparation(scraped.Instructions, scraped.InstructionsList, scraped.ParsedInstructions)
	rec.Nutrition = Nutrition(scraped.Nutrients)
	rec.Tags = Tags(scraped.Keywords, scraped.DietaryRestrictions)

	return rec
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
