package convert

import (
	"regexp"
	"strings"

	"github.com/ladle-app/ladle"
	"github.com/ladle-app/ladle/units"
)

// IgnoreLists holds caller-supplied ingredient patterns that should be
// skipped during conversion. Matching is case-insensitive: Exact entries
// must equal the whole trimmed string, Prefix entries match its beginning.
type IgnoreLists struct {
	Exact  []string
	Prefix []string
}

func (l IgnoreLists) matches(s string) bool {
	lower := strings.ToLower(strings.TrimSpace(s))
	for _, e := range l.Exact {
		if lower == strings.ToLower(e) {
			return true
		}
	}
	for _, p := range l.Prefix {
		if strings.HasPrefix(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

var parentheticalRe = regexp.MustCompile(`\([^)]*\)`)

// cleanIngredientName drops parenthetical asides and punctuation noise from
// an ingredient name.
func cleanIngredientName(s string) string {
	s = parentheticalRe.ReplaceAllString(s, "")
	s = strings.Trim(s, " \t,.;:*")
	return collapseWhitespace(s)
}

// ParseIngredient parses a free-text ingredient line into its quantity,
// unit and name parts. The second return is false when the line matched an
// ignore pattern; the caller keeps the original text as skipped.
//
// Lines without a leading parsable number become a bare name with empty
// quantity and unit. Mixed fractions such as "1 1/2" are read as a single
// quantity.
func ParseIngredient(text string, ignore IgnoreLists) (ladle.Ingredient, bool) {
	trimmed := strings.TrimSpace(text)
	if ignore.matches(trimmed) {
		return ladle.Ingredient{}, false
	}

	tokens := strings.Fields(trimmed)
	if len(tokens) < 2 {
		return ladle.Ingredient{Name: cleanIngredientName(trimmed)}, true
	}

	take := 1
	if strings.Contains(tokens[1], "/") {
		take = 2
	}
	qty, ok := units.ParseQuantity(strings.Join(tokens[:take], " "))
	if !ok {
		return ladle.Ingredient{Name: cleanIngredientName(trimmed)}, true
	}

	ing := ladle.Ingredient{Quantity: units.FormatQuantity(qty)}
	rest := tokens[take:]
	switch len(rest) {
	case 0:
	case 1:
		ing.Name = cleanIngredientName(rest[0])
	default:
		ing.Unit = rest[0]
		ing.Name = cleanIngredientName(strings.Join(rest[1:], " "))
	}
	return ing, true
}

// Ingredients converts the scraped ingredient strings, preferring the
// structured list when the source markup provided one. It returns the kept
// ingredients alongside the original strings skipped by the ignore lists.
func Ingredients(raw []string, structured []ladle.ParsedIngredient, ignore IgnoreLists) ([]ladle.Ingredient, []string) {
	var kept []ladle.Ingredient
	var skipped []string

	if len(structured) > 0 {
		for _, p := range structured {
			if ignore.matches(p.Name) {
				skipped = append(skipped, p.Name)
				continue
			}
			kept = append(kept, ladle.Ingredient{
				Name:     p.Name,
				Quantity: p.Quantity,
				Unit:     p.Unit,
			})
		}
		return kept, skipped
	}

	for _, s := range raw {
		ing, ok := ParseIngredient(s, ignore)
		if !ok {
			skipped = append(skipped, strings.TrimSpace(s))
			continue
		}
		kept = append(kept, ing)
	}
	return kept, skipped
}
