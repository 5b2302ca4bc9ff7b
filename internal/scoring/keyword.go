// Package scoring implements the per-category resume scorers. Each scorer is
// a pure function of the resume text and the job category configuration,
// producing one 0-100 sub-score; the scorers share no state and may run
// concurrently.
package scoring

import (
	"github.com/jonathan/ats-analyzer/internal/keywords"
	"github.com/jonathan/ats-analyzer/internal/types"
)

// Split between the required and preferred keyword contributions.
const (
	requiredKeywordShare  = 70.0
	preferredKeywordShare = 30.0
)

// ScoreKeywords scores how well the text covers the category's required and
// preferred vocabularies. Required keywords carry 70 points, preferred 30.
// A category with no vocabulary at all scores 100 so that the general
// fallback category is never penalized for its empty keyword lists.
func ScoreKeywords(text string, cfg *types.JobCategoryConfig) types.CategoryScore {
	return ScoreVocabulary(types.CategoryKeywordMatching, text, cfg.RequiredKeywords, cfg.PreferredKeywords)
}

// ScoreVocabulary implements the 70/30 required/preferred split shared by
// the general keyword scorer and the company keyword_relevance and
// skills_match axes.
func ScoreVocabulary(name, text string, required, preferred []string) types.CategoryScore {
	reqMatched, reqMissing := keywords.Match(text, required)
	prefMatched, prefMissing := keywords.Match(text, preferred)

	score := types.CategoryScore{
		Name:    name,
		Matched: append(reqMatched, prefMatched...),
		Missing: append(reqMissing, prefMissing...),
	}

	reqTotal := len(reqMatched) + len(reqMissing)
	prefTotal := len(prefMatched) + len(prefMissing)
	if reqTotal == 0 && prefTotal == 0 {
		score.RawScore = 100
		return score
	}

	raw := float64(len(reqMatched))/float64(max(1, reqTotal))*requiredKeywordShare +
		float64(len(prefMatched))/float64(max(1, prefTotal))*preferredKeywordShare
	score.RawScore = clampScore(raw)
	return score
}

// clampScore bounds a raw score to the [0,100] range every scorer promises.
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
