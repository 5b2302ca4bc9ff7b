// Package category implements automatic job-category detection from resume text.
package category

import (
	"sort"

	"github.com/jonathan/ats-analyzer/internal/keywords"
	"github.com/jonathan/ats-analyzer/internal/types"
)

// Detect picks the job category whose vocabulary occurs most often in the
// text, returning the winner and the per-category occurrence counts. Ties
// break lexicographically so detection is deterministic; when nothing
// matches at all the general category wins.
func Detect(text string, vocabularies map[string][]string) (string, map[string]int) {
	scores := make(map[string]int, len(vocabularies))

	names := make([]string, 0, len(vocabularies))
	for name := range vocabularies {
		names = append(names, name)
	}
	sort.Strings(names)

	best := types.GeneralCategory
	bestScore := 0
	for _, name := range names {
		score := 0
		for _, entry := range vocabularies[name] {
			score += keywords.Count(text, entry)
		}
		scores[name] = score
		if score > bestScore {
			best = name
			bestScore = score
		}
	}

	return best, scores
}
