package evaluate

import (
	"regexp"
	"strconv"
)

// Extraction patterns in priority order. The first match wins; a match
// whose digit falls outside 1-5 counts as no match at all.
var scorePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)score:\s*(\d+)`),
	regexp.MustCompile(`(?i)rating:\s*(\d+)`),
	regexp.MustCompile(`(?im)^\s*(\d+)\s*/\s*5`),
	regexp.MustCompile(`(?i)(\d+)\s+out\s+of\s+5`),
}

// ExtractScore scans free-form evaluation text for a score. Returns
// false when no pattern yields an in-range value.
func ExtractScore(text string) (int, bool) {
	for _, re := range scorePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n >= 1 && n <= 5 {
			return n, true
		}
	}
	return 0, false
}
