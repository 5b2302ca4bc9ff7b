//nolint:revive // types is a standard Go package name pattern
package types

// GeneralCategory is the fallback job category used when a requested
// category key has no configuration of its own.
const GeneralCategory = "general"

// DefaultMinimumATSScore is the pass threshold applied when a category
// configuration does not set one.
const DefaultMinimumATSScore = 75

// JobCategoryConfig is the immutable per-category configuration bundle.
// Instances are constructed once at startup and shared read-only across
// concurrent analyses.
type JobCategoryConfig struct {
	Name                   string   `json:"name"`
	RequiredKeywords       []string `json:"required_keywords"`
	PreferredKeywords      []string `json:"preferred_keywords,omitempty"`
	MinimumExperienceYears int      `json:"minimum_experience_years,omitempty"`
	RequiredEducation      []string `json:"required_education,omitempty"`
	MinimumATSScore        int      `json:"minimum_ats_score,omitempty"`
}

// PassThreshold returns the configured minimum overall score, falling back
// to the default when unset.
func (c *JobCategoryConfig) PassThreshold() float64 {
	if c == nil || c.MinimumATSScore <= 0 {
		return DefaultMinimumATSScore
	}
	return float64(c.MinimumATSScore)
}

// CompanyJobRequirements describes an employer's hiring bar for one
// position: the keyword lists, the experience floor, and the education
// terms the company screens for.
type CompanyJobRequirements struct {
	Position               string   `json:"position"`
	RequiredKeywords       []string `json:"required_keywords"`
	PreferredKeywords      []string `json:"preferred_keywords,omitempty"`
	RequiredSkills         []string `json:"required_skills,omitempty"`
	PreferredSkills        []string `json:"preferred_skills,omitempty"`
	MinimumExperienceYears int      `json:"minimum_experience_years"`
	RequiredEducation      []string `json:"required_education,omitempty"`
	MinimumATSScore        int      `json:"minimum_ats_score,omitempty"`
}

// PassThreshold returns the company's minimum overall score, falling back
// to the default when unset.
func (r *CompanyJobRequirements) PassThreshold() float64 {
	if r == nil || r.MinimumATSScore <= 0 {
		return DefaultMinimumATSScore
	}
	return float64(r.MinimumATSScore)
}

// HasSkillVocabulary reports whether the requirements distinguish a skills
// sub-vocabulary from the general keyword lists. When false, the skills_match
// axis reuses the keyword_relevance result instead of recomputing it.
func (r *CompanyJobRequirements) HasSkillVocabulary() bool {
	return len(r.RequiredSkills) > 0 || len(r.PreferredSkills) > 0
}

// CriteriaWeights maps a criterion name to its integer weight. Weights are
// validated to sum to 100 at configuration load, not at analysis time.
type CriteriaWeights map[string]int

// Sum returns the total of all weights.
func (w CriteriaWeights) Sum() int {
	total := 0
	for _, v := range w {
		total += v
	}
	return total
}
