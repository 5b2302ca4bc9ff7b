// Package types provides type definitions for structured data used throughout the ats-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"
)

// Category names for the general ATS axes, in aggregator weight order.
const (
	CategoryKeywordMatching     = "keyword_matching"
	CategoryFormatCompatibility = "format_compatibility"
	CategoryReadability         = "readability"
	CategoryStructure           = "structure_organization"
	CategoryContactInformation  = "contact_information"
)

// Category names for the company-specific evaluation axes.
const (
	CriterionATSCompatibility    = "ats_compatibility"
	CriterionKeywordRelevance    = "keyword_relevance"
	CriterionExperienceLevel     = "experience_level"
	CriterionEducationBackground = "education_background"
	CriterionSkillsMatch         = "skills_match"
)

// Rating labels for the overall score bands.
const (
	RatingExcellent = "Excellent"
	RatingGood      = "Good"
	RatingAverage   = "Average"
	RatingPoor      = "Poor"
	RatingVeryPoor  = "Very Poor"
)

// CategoryScore represents one evaluation axis: a 0-100 sub-score with the
// keyword evidence behind it. Immutable once produced by a scorer.
type CategoryScore struct {
	Name     string   `json:"name"`
	RawScore float64  `json:"raw_score"`
	Weight   float64  `json:"weight"`
	Matched  []string `json:"matched,omitempty"`
	Missing  []string `json:"missing,omitempty"`
}

// AnalysisResult is the sole artifact crossing the core boundary. It is
// created fresh per submission and never mutated after construction;
// notifiers, persistence, and presentation all consume it read-only.
// EvaluatedAt is the only field that may differ between two analyses of
// identical input.
type AnalysisResult struct {
	OverallScore   float64         `json:"overall_score"`
	Passed         bool            `json:"passed"`
	Rating         string          `json:"rating"`
	RatingDetail   string          `json:"rating_detail"`
	CategoryScores []CategoryScore `json:"category_scores"`
	Feedback       []string        `json:"feedback"`
	JobCategory    string          `json:"job_category"`
	EvaluatedAt    time.Time       `json:"evaluated_at"`
}

// Score returns the sub-score for the named category, or -1 if absent.
func (r *AnalysisResult) Score(category string) float64 {
	for _, cs := range r.CategoryScores {
		if cs.Name == category {
			return cs.RawScore
		}
	}
	return -1
}
