// Package convert turns scraped recipe records into the persistence-facing
// shape: parsed ingredient rows, titled preparation steps, per-100g nutrition
// facts and deduplicated tags.
package convert

import (
	"strings"

	"golang.org/x/net/html"
)

// StripTags removes markup from an HTML fragment and returns its text
// content with entities decoded and whitespace collapsed.
func StripTags(s string) string {
	if !strings.Contains(s, "<") {
		return collapseWhitespace(html.UnescapeString(s))
	}

	var b strings.Builder
	tz := html.NewTokenizer(strings.NewReader(s))
	for {
		switch tz.Next() {
		case html.ErrorToken:
			return collapseWhitespace(b.String())
		case html.TextToken:
			b.Write(tz.Text())
		}
	}
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
