// Package units parses the small free-text fragments recipe sites embed in
// their structured data: ISO-8601 durations, quantities with fractions,
// combined quantity+unit tokens, and serving counts. Everything here is a
// fixed tokenizer pass over short strings; the heuristics are pinned by
// tests and intentionally not generalized.
package units

import (
	"regexp"
	"strconv"
	"strings"
)

// isoDurationRe matches ISO-8601-style durations of the shape P…DT…H…M…S
// with every component optional and case ignored.
var isoDurationRe = regexp.MustCompile(`(?i)^P(?:(\d+)D)?T?(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?$`)

// ParseISODuration converts an ISO-8601-style duration into total minutes
// (days*1440 + hours*60 + minutes; seconds are ignored). Returns false for
// unparsable strings and for durations that add up to zero.
func ParseISODuration(s string) (int, bool) {
	m := isoDurationRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}

	days, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	hours, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[3]))

	total := days*1440 + hours*60 + minutes
	if total == 0 {
		return 0, false
	}
	return total, true
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
