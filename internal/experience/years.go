// Package experience extracts claimed years of experience from resume text.
package experience

import (
	"regexp"
	"strconv"
	"strings"
)

// ExtractYears finds phrases of the form "<N> years" that sit near
// experience-indicating context and returns the maximum plausible figure.
// It returns 0 when no such phrase exists: an unverifiable experience claim
// is treated as unproven, not as a neutral default.
func ExtractYears(text string) int {
	lower := strings.ToLower(text)

	best := 0
	for _, match := range yearsPhrase.FindAllStringSubmatchIndex(lower, -1) {
		value, err := strconv.Atoi(lower[match[2]:match[3]])
		if err != nil || value <= 0 || value > maxPlausibleYears {
			continue
		}
		if hasExperienceContext(lower, match[0], match[1]) && value > best {
			best = value
		}
	}
	return best
}

// maxPlausibleYears bounds the extracted figure; anything above it is noise
// (ZIP fragments, years-as-dates) rather than a tenure claim.
const maxPlausibleYears = 50

// contextWindow is how many bytes around a "<N> years" phrase are searched
// for experience-indicating words.
const contextWindow = 60

var yearsPhrase = regexp.MustCompile(`(\d{1,2})\s*\+?\s*(?:years?|yrs?)\b`)

var contextWords = []string{
	"experience", "work", "career", "industry", "professional",
	"background", "field", "development", "expertise",
}

func hasExperienceContext(lower string, start, end int) bool {
	from := start - contextWindow
	if from < 0 {
		from = 0
	}
	to := end + contextWindow
	if to > len(lower) {
		to = len(lower)
	}
	window := lower[from:to]

	for _, word := range contextWords {
		if strings.Contains(window, word) {
			return true
		}
	}
	return false
}
