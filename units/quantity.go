package units

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// quantityUnitRe splits a combined token like "375 g", "3x" or "0,25"
	// into its numeric run and the remainder.
	quantityUnitRe = regexp.MustCompile(`^([\d.,/]+)\s*(.*)$`)

	// fragmentRe matches free-text fragments of the shape "<qty> <unit> <name>",
	// e.g. "2 tbsp olive oil".
	fragmentRe = regexp.MustCompile(`^([\d.,/]+)\s*(\S+)\s+(.+)$`)

	// firstIntRe finds the first integer substring, e.g. "4" in "serves 4 people".
	firstIntRe = regexp.MustCompile(`\d+`)

	// floatTokenRe finds the first float-like token in normalized text.
	floatTokenRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

	fractionRe = regexp.MustCompile(`^(\d+)/([1-9]\d*)$`)
)

// ParseQuantity parses a numeric quantity supporting decimals ("1.5"),
// comma decimals ("0,5"), fractions ("1/2") and mixed numbers ("1 1/2").
func ParseQuantity(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, false
	}

	// Mixed number: whole part followed by a fraction.
	if whole, frac, ok := strings.Cut(s, " "); ok {
		w, err := strconv.ParseFloat(whole, 64)
		if err != nil {
			return 0, false
		}
		f, ok := parseFraction(frac)
		if !ok {
			return 0, false
		}
		return w + f, true
	}

	if f, ok := parseFraction(s); ok {
		return f, true
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseFraction(s string) (float64, bool) {
	m := fractionRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	num, _ := strconv.ParseFloat(m[1], 64)
	den, _ := strconv.ParseFloat(m[2], 64)
	return num / den, true
}

// FormatQuantity renders a quantity without trailing zeros ("1.5", "2").
func FormatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SplitQuantityUnit splits a combined quantity+unit token on the first run
// of digits, decimal separators and slashes:
//
//	"375 g" -> ("375", "g")
//	"3x"    -> ("3", "x")
//	"0,25"  -> ("0.25", "")
//
// Text with no leading numeric run becomes a bare unit.
func SplitQuantityUnit(s string) (quantity, unit string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ""
	}
	m := quantityUnitRe.FindStringSubmatch(s)
	if m == nil {
		return "", s
	}
	return strings.ReplaceAll(m[1], ",", "."), strings.TrimSpace(m[2])
}

// ParseFragment parses a free-text staple item like "2 tbsp olive oil" into
// quantity, unit and name. Items with no leading amount ("salt") come back
// as a bare name with empty quantity and unit.
func ParseFragment(s string) (quantity, unit, name string) {
	s = strings.TrimSpace(s)
	if m := fragmentRe.FindStringSubmatch(s); m != nil {
		return strings.ReplaceAll(m[1], ",", "."), m[2], collapseWhitespace(m[3])
	}
	return "", "", collapseWhitespace(s)
}

// ParseServings extracts the first integer from a yield string
// ("4 servings" -> 4), falling back to def when none is found.
func ParseServings(s string, def int) int {
	if m := firstIntRe.FindString(s); m != "" {
		if n, err := strconv.Atoi(m); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// ExtractNumeric extracts the first float-like token from text such as
// "876kCal" or "12,5 g", normalizing a comma decimal separator and interior
// whitespace first. Returns 0 when no number is present.
func ExtractNumeric(s string) float64 {
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.ReplaceAll(s, " ", "")
	m := floatTokenRe.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

// collapseWhitespace squeezes runs of whitespace (including non-breaking
// spaces) into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
