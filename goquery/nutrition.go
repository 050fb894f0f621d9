package goquery

import (
	"fmt"
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ladle-app/ladle"
	"github.com/ladle-app/ladle/units"
	"golang.org/x/net/html"
)

// Markers for per-100g nutrition sections.
var (
	per100gIDs    = []string{"quantity", "100g", "per100g"}
	calorieLabels = []string{"Énergie (kCal)", "Énergie (kcal)", "Calories", "kcal", "kCal"}
)

// inferServingSize fills in a missing serving size by comparing the
// baseline's per-portion calorie value with a per-100g calorie figure
// displayed elsewhere on the page. Sites that show both let us derive the
// portion weight; when either value is missing the nutrients are returned
// unchanged rather than guessed.
func inferServingSize(doc *goquery.Document, nutrients ladle.Nutrients) ladle.Nutrients {
	if nutrients == nil || nutrients[ladle.NutrientServingSize] != "" {
		return nutrients
	}

	perPortion := units.ExtractNumeric(nutrients[ladle.NutrientCalories])
	if perPortion <= 0 {
		return nutrients
	}

	per100g := findPer100gCalories(doc)
	if per100g <= 0 {
		return nutrients
	}

	grams := int(math.Round(perPortion / per100g * 100))
	if grams <= 0 {
		return nutrients
	}

	enriched := make(ladle.Nutrients, len(nutrients)+1)
	for k, v := range nutrients {
		enriched[k] = v
	}
	enriched[ladle.NutrientServingSize] = fmt.Sprintf("%dg", grams)
	return enriched
}

// findPer100gCalories searches the page for a per-100g calorie figure:
// known section ids first, then any section whose text mentions "100g".
func findPer100gCalories(doc *goquery.Document) float64 {
	for _, id := range per100gIDs {
		sel := doc.Find(fmt.Sprintf("[id=%q]", id)).First()
		if sel.Length() == 0 {
			continue
		}
		if kcal := extractKcalFromSection(sel); kcal > 0 {
			return kcal
		}
	}

	var found float64
	doc.Find("div, section, table, ul").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(sel.Text()), "100g") {
			return true
		}
		if kcal := extractKcalFromSection(sel); kcal > 0 {
			found = kcal
			return false
		}
		return true
	})
	return found
}

// extractKcalFromSection finds a known calorie label inside the section and
// reads the numeric value from the labelled element's next sibling.
func extractKcalFromSection(section *goquery.Selection) float64 {
	var found float64
	for _, label := range calorieLabels {
		section.Find("*").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if !strings.Contains(ownText(sel), label) {
				return true
			}
			if value := units.ExtractNumeric(sel.Next().Text()); value > 0 {
				found = value
				return false
			}
			return true
		})
		if found > 0 {
			return found
		}
	}
	return 0
}

// ownText returns the text of a selection's direct text-node children,
// excluding nested elements.
func ownText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
		}
	}
	return b.String()
}
