package convert

import (
	"strings"

	"github.com/ladle-app/ladle"
)

// Tags merges the keyword and dietary-restriction sources into one tag
// list, trimming entries and deduplicating case-insensitively while keeping
// first-seen order and casing.
func Tags(keywords, dietaryRestrictions []string) []ladle.Tag {
	var tags []ladle.Tag
	seen := make(map[string]struct{})
	for _, src := range [][]string{keywords, dietaryRestrictions} {
		for _, raw := range src {
			name := strings.TrimSpace(raw)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			tags = append(tags, ladle.Tag{Name: name})
		}
	}
	return tags
}
