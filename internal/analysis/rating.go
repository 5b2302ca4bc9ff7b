package analysis

import "github.com/jonathan/ats-analyzer/internal/types"

// Rating thresholds for the overall score bands.
const (
	excellentThreshold = 85
	goodThreshold      = 70
	averageThreshold   = 55
	poorThreshold      = 40
)

// ratingFor maps an overall score onto its rating band and description.
func ratingFor(score float64) (string, string) {
	switch {
	case score >= excellentThreshold:
		return types.RatingExcellent,
			"Your resume is highly ATS-compatible and likely to pass through automated screening systems."
	case score >= goodThreshold:
		return types.RatingGood,
			"Your resume has good ATS compatibility with room for minor improvements."
	case score >= averageThreshold:
		return types.RatingAverage,
			"Your resume may face some challenges with ATS systems. Consider implementing the suggested improvements."
	case score >= poorThreshold:
		return types.RatingPoor,
			"Your resume may have difficulty passing through ATS systems. Significant improvements are recommended."
	default:
		return types.RatingVeryPoor,
			"Your resume is likely to be rejected by ATS systems. Major revisions are necessary."
	}
}
