package jsonld

import (
	"sort"
	"strings"
)

// maxTagDepth bounds the recursive tag search on deeply nested trees.
const maxTagDepth = 10

// FindRecipe recursively searches a parsed JSON value for an object whose
// @type identifies it as a schema.org Recipe. Search order: the object
// itself, then its @graph array members, then any nested value. The first
// match wins.
func FindRecipe(v any) (map[string]any, bool) {
	switch val := v.(type) {
	case map[string]any:
		if isRecipeType(val["@type"]) {
			return val, true
		}
		if graph, ok := val["@graph"].([]any); ok {
			for _, item := range graph {
				if recipe, ok := FindRecipe(item); ok {
					return recipe, true
				}
			}
		}
		for _, key := range sortedKeys(val) {
			if key == "@graph" {
				continue
			}
			if recipe, ok := FindRecipe(val[key]); ok {
				return recipe, true
			}
		}
	case []any:
		for _, item := range val {
			if recipe, ok := FindRecipe(item); ok {
				return recipe, true
			}
		}
	}
	return nil, false
}

// isRecipeType reports whether a @type value names a Recipe: the string
// "Recipe", any string ending in "/Recipe", or an array containing such a
// string.
func isRecipeType(v any) bool {
	switch typ := v.(type) {
	case string:
		return typ == "Recipe" || strings.HasSuffix(typ, "/Recipe")
	case []any:
		for _, item := range typ {
			if s, ok := item.(string); ok && (s == "Recipe" || strings.HasSuffix(s, "/Recipe")) {
				return true
			}
		}
	}
	return false
}

// FindTags recursively searches a parsed JSON value for a "tags" or
// "labels" array of user-facing entries. Object entries contribute their
// "name" field; entries not marked for display are filtered out. The first
// non-empty candidate array wins; sibling keys are never merged. Recursion
// stops past maxTagDepth and returns nil.
func FindTags(v any, depth int) []string {
	if depth > maxTagDepth {
		return nil
	}

	switch val := v.(type) {
	case map[string]any:
		for _, key := range []string{"tags", "labels"} {
			arr, ok := val[key].([]any)
			if !ok {
				continue
			}
			var result []string
			for _, tag := range arr {
				if !isUserFacingTag(tag) {
					continue
				}
				switch entry := tag.(type) {
				case string:
					if entry != "" {
						result = append(result, entry)
					}
				case map[string]any:
					if name, ok := entry["name"].(string); ok && name != "" {
						result = append(result, name)
					}
				}
			}
			if len(result) > 0 {
				return result
			}
		}

		// Map iteration order is randomized in Go; sort keys so repeated
		// runs over the same payload find the same array first.
		for _, key := range sortedKeys(val) {
			if found := FindTags(val[key], depth+1); found != nil {
				return found
			}
		}
	case []any:
		for _, item := range val {
			if found := FindTags(item, depth+1); found != nil {
				return found
			}
		}
	}
	return nil
}

// isUserFacingTag reports whether a tag entry should be shown to users:
// plain strings pass through, objects only when explicitly flagged for
// display under either naming convention.
func isUserFacingTag(tag any) bool {
	obj, ok := tag.(map[string]any)
	if !ok {
		return true
	}
	if flag, ok := obj["displayLabel"].(bool); ok && flag {
		return true
	}
	if flag, ok := obj["display_label"].(bool); ok && flag {
		return true
	}
	return false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
