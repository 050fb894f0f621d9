package convert

import (
	"regexp"
	"strings"

	"github.com/ladle-app/ladle"
)

var numberedPrefixRe = regexp.MustCompile(`^\d{1,3}\.`)

// RemoveNumberedPrefix strips a leading ordinal of the form "<n>." from a
// step line, when present.
func RemoveNumberedPrefix(s string) string {
	return strings.TrimSpace(numberedPrefixRe.ReplaceAllString(strings.TrimSpace(s), ""))
}

// Preparation builds the preparation steps from the richest instruction
// shape available: grouped structured steps first, then the flat list, then
// the flattened newline-joined string.
func Preparation(flattened *string, list []string, grouped []ladle.InstructionGroup) []ladle.PreparationStep {
	if len(grouped) > 0 {
		steps := make([]ladle.PreparationStep, 0, len(grouped))
		for _, g := range grouped {
			var step ladle.PreparationStep
			if g.Title != nil {
				step.Title = StripTags(*g.Title)
			}
			lines := make([]string, 0, len(g.Instructions))
			for _, in := range g.Instructions {
				if line := StripTags(in); line != "" {
					lines = append(lines, line)
				}
			}
			step.Description = strings.Join(lines, "\n")
			steps = append(steps, step)
		}
		return steps
	}

	if len(list) > 0 {
		steps := make([]ladle.PreparationStep, 0, len(list))
		for _, in := range list {
			steps = append(steps, ladle.PreparationStep{Description: StripTags(in)})
		}
		return steps
	}

	if flattened == nil {
		return nil
	}
	var steps []ladle.PreparationStep
	for _, line := range strings.Split(*flattened, "\n") {
		text := RemoveNumberedPrefix(StripTags(line))
		if text == "" {
			continue
		}
		steps = append(steps, ladle.PreparationStep{Description: text})
	}
	return steps
}
