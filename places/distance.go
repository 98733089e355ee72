package places

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	kilometersRe = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*km`)
	metersRe     = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*m`)
)

// ParseDistance converts free text like "5 km", "750 m" or "500" into an
// integer meter count. The second return value reports whether the text was
// recognized; callers apply their own fallback when it is false.
func ParseDistance(text string) (int, bool) {
	text = strings.TrimSpace(text)

	if match := kilometersRe.FindStringSubmatch(text); match != nil {
		value, err := strconv.ParseFloat(match[1], 64)
		if err == nil {
			return int(value * 1000), true
		}
	}

	if match := metersRe.FindStringSubmatch(text); match != nil {
		value, err := strconv.ParseFloat(match[1], 64)
		if err == nil {
			return int(value), true
		}
	}

	if value, err := strconv.ParseFloat(text, 64); err == nil {
		return int(value), true
	}

	return 0, false
}
