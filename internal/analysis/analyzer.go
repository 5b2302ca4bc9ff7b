package analysis

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-analyzer/internal/scoring"
	"github.com/jonathan/ats-analyzer/internal/types"
)

// Default category weights for the general ATS aggregation. They sum to 100.
func DefaultCategoryWeights() types.CriteriaWeights {
	return types.CriteriaWeights{
		types.CategoryKeywordMatching:     30,
		types.CategoryFormatCompatibility: 25,
		types.CategoryReadability:         20,
		types.CategoryStructure:           15,
		types.CategoryContactInformation:  10,
	}
}

// scorerFuncs maps each category to its scorer. All scorers are pure, so
// the analyzer fans them out concurrently and joins on the aggregator.
var scorerFuncs = map[string]func(string, *types.JobCategoryConfig) types.CategoryScore{
	types.CategoryKeywordMatching:     scoring.ScoreKeywords,
	types.CategoryFormatCompatibility: scoring.ScoreFormat,
	types.CategoryReadability:         scoring.ScoreReadability,
	types.CategoryStructure:           scoring.ScoreStructure,
	types.CategoryContactInformation:  scoring.ScoreContact,
}

// canonicalOrder breaks weight ties so category ordering stays deterministic.
var canonicalOrder = []string{
	types.CategoryKeywordMatching,
	types.CategoryFormatCompatibility,
	types.CategoryReadability,
	types.CategoryStructure,
	types.CategoryContactInformation,
}

// Analyzer runs the five category scorers and aggregates their sub-scores
// into the general ATS verdict. It holds only immutable configuration and
// is safe for concurrent reuse across unrelated submissions.
type Analyzer struct {
	weights types.CriteriaWeights
	order   []string
	log     *zap.SugaredLogger
}

// NewAnalyzer validates the category weights and returns an analyzer.
// A nil weights map selects the defaults; a nil logger disables logging.
// Weights that sum to a total other than 100 are accepted but the
// renormalization is logged, never applied silently.
func NewAnalyzer(weights types.CriteriaWeights, log *zap.SugaredLogger) (*Analyzer, error) {
	if weights == nil {
		weights = DefaultCategoryWeights()
	}
	for name, w := range weights {
		if _, ok := scorerFuncs[name]; !ok {
			return nil, &ConfigurationError{Message: fmt.Sprintf("unknown category %q in weights", name)}
		}
		if w < 0 {
			return nil, &ConfigurationError{Message: fmt.Sprintf("negative weight %d for category %q", w, name)}
		}
	}
	sum := weights.Sum()
	if sum <= 0 {
		return nil, &ConfigurationError{Message: fmt.Sprintf("category weights sum to %d, want a positive total", sum)}
	}
	if sum != 100 && log != nil {
		log.Warnw("category weights do not sum to 100; overall score is normalized by the actual total",
			"sum", sum)
	}

	order := make([]string, len(canonicalOrder))
	copy(order, canonicalOrder)
	sort.SliceStable(order, func(i, j int) bool {
		return weights[order[i]] > weights[order[j]]
	})

	return &Analyzer{weights: weights, order: order, log: log}, nil
}

// Analyze scores resume text against a job category configuration and
// returns the full ATS analysis. Malformed or empty text is valid input and
// simply scores low; a missing configuration is a ConfigurationError.
func (a *Analyzer) Analyze(text, jobCategory string, cfg *types.JobCategoryConfig) (*types.AnalysisResult, error) {
	if cfg == nil {
		return nil, &ConfigurationError{
			Message: fmt.Sprintf("job category %q has no configuration and no general default was supplied", jobCategory),
		}
	}

	scores := a.runScorers(text, cfg)
	overall, passed, err := Aggregate(scores, cfg.PassThreshold())
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

// runScorers fans the category scorers out on independent goroutines and
// joins all five results. Scorers are pure so no locking is needed; each
// goroutine writes only its own slot.
func (a *Analyzer) runScorers(text string, cfg *types.JobCategoryConfig) []types.CategoryScore {
	results := make([]types.CategoryScore, len(a.order))

	var g errgroup.Group
	for i, name := range a.order {
		g.Go(func() error {
			score := scorerFuncs[name](text, cfg)
			score.Weight = float64(a.weights[name])
			results[i] = score
			return nil
		})
	}
	_ = g.Wait() // scorers never fail

	return results
}

// Aggregate combines category sub-scores into the weighted overall score
// and the pass verdict against the given threshold. The overall score is
// the weighted sum divided by the weight total; a non-positive total is a
// configuration error, never a fabricated score.
func Aggregate(scores []types.CategoryScore, passThreshold float64) (float64, bool, error) {
	weightTotal := 0.0
	weightedSum := 0.0
	for _, cs := range scores {
		if cs.Weight < 0 {
			return 0, false, &ConfigurationError{Message: fmt.Sprintf("negative weight %.1f for category %q", cs.Weight, cs.Name)}
		}
		weightTotal += cs.Weight
		weightedSum += cs.RawScore * cs.Weight
	}
	if weightTotal <= 0 {
		return 0, false, &ConfigurationError{Message: "category weights sum to zero"}
	}

	overall := weightedSum / weightTotal
	return overall, overall >= passThreshold, nil
}
