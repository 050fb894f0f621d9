package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ladle-app/ladle"
	"github.com/ladle-app/ladle/units"
	"golang.org/x/net/html"
)

// extractStructuredIngredients recovers quantity/unit/name triples from
// well-formatted markup: a ul.ingredient-list whose items carry the
// quantity+unit in their first span and the name in their second. If any
// item lacks the two-span shape the whole structured extraction is aborted;
// structured and heuristic rows are never mixed. A ul.kitchen-list
// contributes additional staple items parsed from free text.
func extractStructuredIngredients(doc *goquery.Document) []ladle.ParsedIngredient {
	list := doc.Find("ul.ingredient-list").First()
	if list.Length() == 0 {
		return nil
	}

	var results []ladle.ParsedIngredient
	aborted := false

	list.ChildrenFiltered("li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		spans := li.ChildrenFiltered("span")
		if spans.Length() < 2 {
			aborted = true
			return false
		}

		quantity, unit := units.SplitQuantityUnit(strings.TrimSpace(spans.Eq(0).Text()))
		results = append(results, ladle.ParsedIngredient{
			Quantity: quantity,
			Unit:     unit,
			Name:     cleanIngredientName(spacedText(spans.Eq(1))),
		})
		return true
	})
	if aborted {
		return nil
	}

	doc.Find("ul.kitchen-list").First().ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		text := strings.TrimSpace(li.Text())
		if text == "" {
			return
		}
		quantity, unit, name := units.ParseFragment(text)
		results = append(results, ladle.ParsedIngredient{
			Quantity: quantity,
			Unit:     unit,
			Name:     name,
		})
	})

	if len(results) == 0 {
		return nil
	}
	return results
}

// cleanIngredientName normalizes non-breaking spaces and squeezes repeated
// whitespace. Parenthetical content is kept: it often carries weights.
func cleanIngredientName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// spacedText renders a selection's text with a space between adjacent text
// nodes, so nested elements ("honey" followed by a "Organic" badge span)
// don't run together the way plain Text() concatenation does.
func spacedText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
