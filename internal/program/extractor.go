package program

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultBedrooms  = 3
	DefaultBathrooms = 2

	MinBedrooms  = 1
	MaxBedrooms  = 6
	MinBathrooms = 1
	MaxBathrooms = 4
)

var (
	bedroomPattern  = regexp.MustCompile(`(\d+)\s*bed`)
	bathroomPattern = regexp.MustCompile(`(\d+)\s*bath`)
)

var (
	officeKeywords   = []string{"office", "study", "workspace"}
	openPlanKeywords = []string{"open plan", "open-plan", "open concept", "open layout"}

	// modern wins over traditional when both are present
	modernKeywords      = []string{"modern", "contemporary", "minimal"}
	traditionalKeywords = []string{"traditional", "classic"}
)

// Extract derives a HousingProgram from a free-text prompt using keyword and
// pattern matching. It is total: unrecognized or empty text yields the
// defaults, and room counts are clamped to their valid ranges. Numeric
// extraction uses the first matching occurrence only.
func Extract(prompt string) HousingProgram {
	text := strings.ToLower(prompt)

	return HousingProgram{
		Bedrooms:  clamp(findCount(bedroomPattern, text, DefaultBedrooms), MinBedrooms, MaxBedrooms),
		Bathrooms: clamp(findCount(bathroomPattern, text, DefaultBathrooms), MinBathrooms, MaxBathrooms),
		Office:    containsAny(text, officeKeywords),
		OpenPlan:  containsAny(text, openPlanKeywords),
		Style:     matchStyle(text),
	}
}

func findCount(pattern *regexp.Regexp, text string, fallback int) int {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return fallback
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// only possible for absurdly long digit runs
		return fallback
	}
	return n
}

func matchStyle(text string) Style {
	switch {
	case containsAny(text, modernKeywords):
		return StyleModern
	case containsAny(text, traditionalKeywords):
		return StyleTraditional
	default:
		return StyleNeutral
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func clamp(n, low, high int) int {
	if n < low {
		return low
	}
	if n > high {
		return high
	}
	return n
}
