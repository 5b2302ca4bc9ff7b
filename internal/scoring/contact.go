package scoring

import (
	"regexp"

	"github.com/jonathan/ats-analyzer/internal/keywords"
	"github.com/jonathan/ats-analyzer/internal/types"
)

// Contact signal names reported in the matched/missing sets.
const (
	signalEmail    = "email"
	signalPhone    = "phone"
	signalLocation = "location"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	locationTokens = []string{"address", "location", "based in", "city", "remote", "relocate"}
)

// ScoreContact checks for the three contact signals an ATS extracts: an
// email address, a phone number, and a location hint. The score is the
// share of signals present; a resume with none scores zero.
func ScoreContact(text string, _ *types.JobCategoryConfig) types.CategoryScore {
	score := types.CategoryScore{Name: types.CategoryContactInformation}

	record := func(name string, present bool) {
		if present {
			score.Matched = append(score.Matched, name)
		} else {
			score.Missing = append(score.Missing, name)
		}
	}

	record(signalEmail, emailPattern.MatchString(text))
	record(signalPhone, phonePattern.MatchString(text))
	locMatched, _ := keywords.Match(text, locationTokens)
	record(signalLocation, len(locMatched) > 0)

	expected := len(score.Matched) + len(score.Missing)
	score.RawScore = clampScore(float64(len(score.Matched)) / float64(expected) * 100)
	return score
}
