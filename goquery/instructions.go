package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ladle-app/ladle"
)

// Known markers for instruction containers and step regions. These are the
// patterns observed across supported sites; extending them is preferable to
// generalizing the lookup.
var (
	instructionContainerIDs     = []string{"preparation-steps", "recipe-steps", "instructions", "method", "directions"}
	instructionContainerClasses = []string{"recipe-steps", "instructions", "method", "directions", "preparation"}

	stepClasses = map[string]bool{
		"step":              true,
		"toggle":            true,
		"instruction":       true,
		"etape":             true,
		"step-instructions": true,
	}

	// stepTitlePrefixRe strips leading ordinals and step labels such as
	// "1. ", "Étape 2:" or "Step 3 -".
	stepTitlePrefixRe = regexp.MustCompile(`(?i)^(\d+[.:\-\s]+|[Éé]tape\s*\d*[.:\-\s]*|Step\s*\d*[.:\-\s]*)`)
)

// extractStructuredInstructions recovers titled step groups from markup
// that groups its preparation steps under headings. Steps with no body
// text are dropped; nil is returned when no step yields content, in which
// case the caller keeps the flat instruction list.
func extractStructuredInstructions(doc *goquery.Document) []ladle.InstructionGroup {
	container := findInstructionContainer(doc)
	if container == nil {
		return nil
	}

	var groups []ladle.InstructionGroup
	container.Find("div").Each(func(_ int, div *goquery.Selection) {
		if !hasStepClass(div) {
			return
		}

		var steps []string
		div.Find("li").Each(func(_ int, li *goquery.Selection) {
			if text := strings.TrimSpace(li.Text()); text != "" {
				steps = append(steps, text)
			}
		})
		if len(steps) == 0 {
			return
		}

		groups = append(groups, ladle.InstructionGroup{
			Title:        extractStepTitle(div),
			Instructions: steps,
		})
	})

	if len(groups) == 0 {
		return nil
	}
	return groups
}

// findInstructionContainer locates the instruction container by known id
// candidates first, then by known class candidates.
func findInstructionContainer(doc *goquery.Document) *goquery.Selection {
	for _, id := range instructionContainerIDs {
		if sel := doc.Find("div#" + id).First(); sel.Length() > 0 {
			return sel
		}
	}
	for _, class := range instructionContainerClasses {
		if sel := doc.Find("div." + class).First(); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

func hasStepClass(div *goquery.Selection) bool {
	attr, ok := div.Attr("class")
	if !ok {
		return false
	}
	for _, class := range strings.Fields(attr) {
		if stepClasses[strings.ToLower(class)] {
			return true
		}
	}
	return false
}

// extractStepTitle pulls a step title from the first match among a bold
// paragraph, a strong/bold span, or a heading, with the leading ordinal or
// step label stripped. Returns nil when the step carries no usable title.
func extractStepTitle(div *goquery.Selection) *string {
	candidates := []string{"p.bold", "span.bold", "strong", "h2", "h3", "h4", "h5", "h6"}

	for _, selector := range candidates {
		elem := div.Find(selector).First()
		if elem.Length() == 0 {
			continue
		}
		title := strings.TrimSpace(stepTitlePrefixRe.ReplaceAllString(strings.TrimSpace(elem.Text()), ""))
		if title != "" {
			return ladle.String(title)
		}
		return nil
	}
	return nil
}
