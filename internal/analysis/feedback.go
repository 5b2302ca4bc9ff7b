package analysis

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-analyzer/internal/types"
)

// feedbackThreshold is the sub-score below which a category earns concrete
// improvement suggestions.
const feedbackThreshold = 70.0

// maxSuggestedKeywords caps how many missing vocabulary entries a single
// suggestion names.
const maxSuggestedKeywords = 5

// Canned remediation for categories whose evidence is not a keyword list.
var remediations = map[string][]string{
	types.CategoryFormatCompatibility: {
		"Use a simple, clean format without tables, text boxes, or images",
		"Avoid headers and footers that may not be parsed correctly",
	},
	types.CategoryReadability: {
		"Use bullet points to organize information clearly",
		"Keep sentences concise and easy to read",
	},
	types.CriterionATSCompatibility: {
		"Improve the resume's overall ATS compatibility before applying",
	},
	types.CriterionExperienceLevel: {
		"State your years of experience explicitly, e.g. \"5 years of experience in backend development\"",
	},
}

// GenerateFeedback turns an analysis result into ordered, human-readable
// recommendations. Categories are visited in the result's order (highest
// weight first); every entry states its sub-score, and categories below the
// feedback threshold add concrete suggestions drawn from their missing sets
// or the canned remediation list. The verdict selects the framing line but
// never alters the reported sub-scores.
func GenerateFeedback(result *types.AnalysisResult) []string {
	feedback := []string{toneLine(result)}

	for _, cs := range result.CategoryScores {
		feedback = append(feedback, fmt.Sprintf("%s scored %.1f/100", categoryLabel(cs.Name), cs.RawScore))
		if cs.RawScore >= feedbackThreshold {
			continue
		}
		feedback = append(feedback, suggestionsFor(cs)...)
	}

	return feedback
}

// toneLine selects the congratulatory or improvement framing from the
// verdict.
func toneLine(result *types.AnalysisResult) string {
	if result.Passed {
		return fmt.Sprintf("Great job! Your resume scored %.1f and passed the screening for the %s category.",
			result.OverallScore, result.JobCategory)
	}
	return fmt.Sprintf("Your resume scored %.1f and did not pass the screening for the %s category. The suggestions below will strengthen your application.",
		result.OverallScore, result.JobCategory)
}

// suggestionsFor produces the concrete suggestions for one weak category.
func suggestionsFor(cs types.CategoryScore) []string {
	switch cs.Name {
	case types.CategoryKeywordMatching, types.CriterionKeywordRelevance, types.CriterionSkillsMatch:
		if len(cs.Missing) == 0 {
			return []string{"Tailor your resume to include industry-specific terminology"}
		}
		return []string{fmt.Sprintf("Include relevant keywords: %s", joinLimited(cs.Missing, maxSuggestedKeywords))}
	case types.CategoryStructure:
		if len(cs.Missing) == 0 {
			return nil
		}
		return []string{fmt.Sprintf("Add clearly labeled sections for: %s", strings.Join(cs.Missing, ", "))}
	case types.CategoryContactInformation:
		if len(cs.Missing) == 0 {
			return nil
		}
		return []string{fmt.Sprintf("Ensure contact information is clearly visible; missing: %s", strings.Join(cs.Missing, ", "))}
	case types.CriterionEducationBackground:
		if len(cs.Missing) == 0 {
			return []string{"Include your education credentials with degree level and field"}
		}
		return []string{fmt.Sprintf("Mention the required education background: %s", joinLimited(cs.Missing, maxSuggestedKeywords))}
	default:
		return remediations[cs.Name]
	}
}

// categoryLabel renders a category name for humans.
func categoryLabel(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

func joinLimited(items []string, limit int) string {
	if len(items) > limit {
		items = items[:limit]
	}
	return strings.Join(items, ", ")
}
