package analysis

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-analyzer/internal/experience"
	"github.com/jonathan/ats-analyzer/internal/keywords"
	"github.com/jonathan/ats-analyzer/internal/scoring"
	"github.com/jonathan/ats-analyzer/internal/types"
)

// Default weights for the company criteria axes. They sum to 100.
func DefaultCriteriaWeights() types.CriteriaWeights {
	return types.CriteriaWeights{
		types.CriterionKeywordRelevance:    30,
		types.CriterionATSCompatibility:    25,
		types.CriterionExperienceLevel:     20,
		types.CriterionSkillsMatch:         15,
		types.CriterionEducationBackground: 10,
	}
}

// criteriaOrder breaks weight ties for the company axes.
var criteriaOrder = []string{
	types.CriterionKeywordRelevance,
	types.CriterionATSCompatibility,
	types.CriterionExperienceLevel,
	types.CriterionSkillsMatch,
	types.CriterionEducationBackground,
}

// AnalyzeForCompany evaluates resume text against an employer's hiring bar.
// The general ATS aggregation (over atsCfg, typically the category's
// company-agnostic defaults) becomes the ats_compatibility axis; the
// remaining axes come from the company's own keyword lists, experience
// floor, and education requirements. Result shape matches Analyze, with
// company axis names instead of the generic categories.
func (a *Analyzer) AnalyzeForCompany(text, jobCategory string, atsCfg *types.JobCategoryConfig, req *types.CompanyJobRequirements, weights types.CriteriaWeights) (*types.AnalysisResult, error) {
	if req == nil {
		return nil, &ConfigurationError{
			Message: fmt.Sprintf("no company requirements profile for job category %q", jobCategory),
		}
	}
	if atsCfg == nil {
		return nil, &ConfigurationError{
			Message: fmt.Sprintf("job category %q has no configuration and no general default was supplied", jobCategory),
		}
	}
	if weights == nil {
		weights = DefaultCriteriaWeights()
	}
	if err := validateCriteriaWeights(weights); err != nil {
		return nil, err
	}
	if sum := weights.Sum(); sum != 100 && a.log != nil {
		a.log.Warnw("criteria weights do not sum to 100; overall score is normalized by the actual total",
			"sum", sum)
	}

	// The ats_compatibility axis reuses the general aggregation; the other
	// four axes are independent of it and of each other.
	var (
		atsScore       types.CategoryScore
		keywordScore   types.CategoryScore
		expScore       types.CategoryScore
		eduScore       types.CategoryScore
		skillsOwnVocab types.CategoryScore
	)

	var g errgroup.Group
	g.Go(func() error {
		generalScores := a.runScorers(text, atsCfg)
		overall, _, err := Aggregate(generalScores, atsCfg.PassThreshold())
		if err != nil {
			return err
		}
		atsScore = types.CategoryScore{Name: types.CriterionATSCompatibility, RawScore: overall}
		return nil
	})
	g.Go(func() error {
		keywordScore = scoring.ScoreVocabulary(types.CriterionKeywordRelevance, text, req.RequiredKeywords, req.PreferredKeywords)
		return nil
	})
	g.Go(func() error {
		expScore = scoreExperienceLevel(text, req.MinimumExperienceYears)
		return nil
	})
	g.Go(func() error {
		eduScore = scoreEducationBackground(text, req.RequiredEducation)
		return nil
	})
	if req.HasSkillVocabulary() {
		g.Go(func() error {
			skillsOwnVocab = scoring.ScoreVocabulary(types.CriterionSkillsMatch, text, req.RequiredSkills, req.PreferredSkills)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Without a distinct skills vocabulary, skills_match falls back to the
	// keyword_relevance result rather than recomputing it.
	skillsScore := skillsOwnVocab
	if !req.HasSkillVocabulary() {
		skillsScore = keywordScore
		skillsScore.Name = types.CriterionSkillsMatch
	}

	byName := map[string]types.CategoryScore{
		types.CriterionATSCompatibility:    atsScore,
		types.CriterionKeywordRelevance:    keywordScore,
		types.CriterionExperienceLevel:     expScore,
		types.CriterionEducationBackground: eduScore,
		types.CriterionSkillsMatch:         skillsScore,
	}

	scores := make([]types.CategoryScore, 0, len(criteriaOrder))
	for _, name := range orderedByWeight(criteriaOrder, weights) {
		score := byName[name]
		score.Weight = float64(weights[name])
		scores = append(scores, score)
	}

	overall, passed, err := Aggregate(scores, req.PassThreshold())
	if err != nil {
		return nil, err
	}

	rating, detail := ratingFor(overall)
	result := &types.AnalysisResult{
		OverallScore:   overall,
		Passed:         passed,
		Rating:         rating,
		RatingDetail:   detail,
		CategoryScores: scores,
		JobCategory:    jobCategory,
		EvaluatedAt:    time.Now().UTC(),
	}
	result.Feedback = GenerateFeedback(result)
	return result, nil
}

// scoreExperienceLevel scores extracted experience years against the
// company's floor. No extractable figure means 0: an unverifiable claim is
// unproven, not neutral.
func scoreExperienceLevel(text string, minimumYears int) types.CategoryScore {
	score := types.CategoryScore{Name: types.CriterionExperienceLevel}

	years := experience.ExtractYears(text)
	if years == 0 {
		return score
	}

	raw := float64(years) / float64(max(1, minimumYears)) * 100
	if raw > 100 {
		raw = 100
	}
	score.RawScore = raw
	return score
}

// scoreEducationBackground keyword-matches the required education terms
// (degree level and field) against the resume text.
func scoreEducationBackground(text string, requiredEducation []string) types.CategoryScore {
	matched, missing := keywords.Match(text, requiredEducation)
	total := len(matched) + len(missing)
	return types.CategoryScore{
		Name:     types.CriterionEducationBackground,
		RawScore: float64(len(matched)) / float64(max(1, total)) * 100,
		Matched:  matched,
		Missing:  missing,
	}
}

// validateCriteriaWeights rejects unknown axes and negative weights, and
// requires a positive total.
func validateCriteriaWeights(weights types.CriteriaWeights) error {
	known := make(map[string]bool, len(criteriaOrder))
	for _, name := range criteriaOrder {
		known[name] = true
	}
	for name, w := range weights {
		if !known[name] {
			return &ConfigurationError{Message: fmt.Sprintf("unknown criterion %q in weights", name)}
		}
		if w < 0 {
			return &ConfigurationError{Message: fmt.Sprintf("negative weight %d for criterion %q", w, name)}
		}
	}
	if sum := weights.Sum(); sum <= 0 {
		return &ConfigurationError{Message: fmt.Sprintf("criteria weights sum to %d, want a positive total", sum)}
	}
	return nil
}

// orderedByWeight sorts axis names by descending weight, keeping the
// canonical order for ties.
func orderedByWeight(names []string, weights types.CriteriaWeights) []string {
	ordered := make([]string, len(names))
	copy(ordered, names)
	sort.SliceStable(ordered, func(i, j int) bool {
		return weights[ordered[i]] > weights[ordered[j]]
	})
	return ordered
}
