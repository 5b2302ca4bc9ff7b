package scoring

import (
	"github.com/jonathan/ats-analyzer/internal/keywords"
	"github.com/jonathan/ats-analyzer/internal/types"
)

// expectedSections lists the resume sections an ATS expects to locate, each
// with the header aliases that count as evidence of its presence. Order is
// fixed so scorer output is deterministic.
var expectedSections = []struct {
	name    string
	aliases []string
}{
	{"summary", []string{"summary", "objective", "profile", "about me"}},
	{"experience", []string{"experience", "work experience", "employment", "work history", "professional experience"}},
	{"education", []string{"education", "academic", "qualifications", "degree"}},
	{"skills", []string{"skills", "technical skills", "competencies", "technologies"}},
}

// ScoreStructure detects the expected section headers by keyword matching
// and scores the share of sections present.
func ScoreStructure(text string, _ *types.JobCategoryConfig) types.CategoryScore {
	score := types.CategoryScore{Name: types.CategoryStructure}

	for _, section := range expectedSections {
		matched, _ := keywords.Match(text, section.aliases)
		if len(matched) > 0 {
			score.Matched = append(score.Matched, section.name)
		} else {
			score.Missing = append(score.Missing, section.name)
		}
	}

	score.RawScore = clampScore(float64(len(score.Matched)) / float64(len(expectedSections)) * 100)
	return score
}
