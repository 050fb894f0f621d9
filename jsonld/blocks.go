// Package jsonld locates schema.org structured data embedded in recipe
// pages and implements the generic extraction backend built on top of it.
// The locator walks parsed JSON as plain `any` values; that representation
// never leaks outside this package.
package jsonld

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const ldJSONType = "application/ld+json"

// ExtractBlocks returns the raw text content of every JSON-LD script block
// in the markup, trimmed, in document order. The type attribute is matched
// case-insensitively. Empty blocks are omitted; malformed markup yields an
// empty slice, never an error.
func ExtractBlocks(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var blocks []string
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		typ, ok := s.Attr("type")
		if !ok || !strings.EqualFold(strings.TrimSpace(typ), ldJSONType) {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			blocks = append(blocks, text)
		}
	})
	return blocks
}

// NextData returns the site-navigation data blob embedded by Next.js sites
// (the __NEXT_DATA__ script), trimmed. Returns false when absent.
func NextData(html string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false
	}
	text := strings.TrimSpace(doc.Find("script#__NEXT_DATA__").First().Text())
	return text, text != ""
}

// TagsFromMarkup searches the page's embedded payloads for user-facing
// tag/label arrays: the navigation data blob first, then each JSON-LD block.
// Returns nil when nothing is found.
func TagsFromMarkup(html string) []string {
	if blob, ok := NextData(html); ok {
		var v any
		if err := json.Unmarshal([]byte(blob), &v); err == nil {
			if tags := FindTags(v, 0); len(tags) > 0 {
				return tags
			}
		}
	}

	for _, block := range ExtractBlocks(html) {
		var v any
		if err := json.Unmarshal([]byte(block), &v); err != nil {
			continue
		}
		if tags := FindTags(v, 0); len(tags) > 0 {
			return tags
		}
	}
	return nil
}

// RecipeFromMarkup locates the first embedded Recipe object in the markup.
// Blocks that fail to parse are skipped. Returns false when no block yields
// a Recipe.
func RecipeFromMarkup(html string) (map[string]any, bool) {
	for _, block := range ExtractBlocks(html) {
		var v any
		if err := json.Unmarshal([]byte(block), &v); err != nil {
			continue
		}
		if recipe, ok := FindRecipe(v); ok {
			return recipe, true
		}
	}
	return nil, false
}
