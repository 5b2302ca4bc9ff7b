package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-analyzer/internal/types"
)

func testAnalyzer(t *testing.T, weights types.CriteriaWeights) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(weights, nil)
	require.NoError(t, err)
	return a
}

func TestNewAnalyzer_DefaultsOnNil(t *testing.T) {
	a := testAnalyzer(t, nil)

	assert.Equal(t, DefaultCategoryWeights(), a.weights)
}

func TestNewAnalyzer_UnknownCategory(t *testing.T) {
	_, err := NewAnalyzer(types.CriteriaWeights{"charisma": 100}, nil)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Message, "charisma")
}

func TestNewAnalyzer_NegativeWeight(t *testing.T) {
	weights := DefaultCategoryWeights()
	weights[types.CategoryReadability] = -5

	_, err := NewAnalyzer(weights, nil)

	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestNewAnalyzer_ZeroTotal(t *testing.T) {
	_, err := NewAnalyzer(types.CriteriaWeights{types.CategoryReadability: 0}, nil)

	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestAnalyze_NilConfig(t *testing.T) {
	a := testAnalyzer(t, nil)

	result, err := a.Analyze("text", "unknown", nil)

	assert.Nil(t, result)
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestAnalyze_CategoriesOrderedByWeight(t *testing.T) {
	a := testAnalyzer(t, nil)

	result, err := a.Analyze("resume text", "general", &types.JobCategoryConfig{Name: "general"})
	require.NoError(t, err)

	names := make([]string, 0, len(result.CategoryScores))
	for _, cs := range result.CategoryScores {
		names = append(names, cs.Name)
	}
	assert.Equal(t, []string{
		types.CategoryKeywordMatching,
		types.CategoryFormatCompatibility,
		types.CategoryReadability,
		types.CategoryStructure,
		types.CategoryContactInformation,
	}, names)
}

func TestAnalyze_EmptyTextIsValidInput(t *testing.T) {
	a := testAnalyzer(t, nil)

	result, err := a.Analyze("", "general", &types.JobCategoryConfig{Name: "general"})
	require.NoError(t, err)

	// empty general vocabulary scores 100 on keywords, clean format scores
	// 100, readability floors at 40, structure and contact at 0:
	// (100*30 + 100*25 + 40*20 + 0 + 0) / 100 = 63
	assert.InDelta(t, 63.0, result.OverallScore, 1e-9)
	assert.False(t, result.Passed)
	assert.Equal(t, types.RatingAverage, result.Rating)
}

func TestAnalyze_RepeatedRunsAgreeExceptTimestamp(t *testing.T) {
	a := testAnalyzer(t, nil)
	cfg := &types.JobCategoryConfig{
		Name:             "software_engineer",
		RequiredKeywords: []string{"python", "sql", "git"},
	}
	text := "Summary: engineer. Experience with python and sql. Education: BS. Skills listed. jane@example.com"

	first, err := a.Analyze(text, "software_engineer", cfg)
	require.NoError(t, err)
	second, err := a.Analyze(text, "software_engineer", cfg)
	require.NoError(t, err)

	second.EvaluatedAt = first.EvaluatedAt
	assert.Equal(t, first, second)
}

func TestAggregate_WeightedAverage(t *testing.T) {
	scores := []types.CategoryScore{
		{Name: "a", RawScore: 80, Weight: 30},
		{Name: "b", RawScore: 60, Weight: 70},
	}

	overall, passed, err := Aggregate(scores, 75)
	require.NoError(t, err)

	assert.InDelta(t, 66.0, overall, 1e-9)
	assert.False(t, passed)
}

func TestAggregate_ThresholdBoundary(t *testing.T) {
	exactly := []types.CategoryScore{{Name: "a", RawScore: 75, Weight: 100}}
	overall, passed, err := Aggregate(exactly, 75)
	require.NoError(t, err)
	assert.Equal(t, 75.0, overall)
	assert.True(t, passed, "score equal to threshold passes")

	justUnder := []types.CategoryScore{{Name: "a", RawScore: 74.999, Weight: 100}}
	_, passed, err = Aggregate(justUnder, 75)
	require.NoError(t, err)
	assert.False(t, passed, "score below threshold fails, no rounding")
}

func TestAggregate_NormalizesByActualTotal(t *testing.T) {
	// weights summing to 50 still yield a 0-100 overall
	scores := []types.CategoryScore{
		{Name: "a", RawScore: 100, Weight: 20},
		{Name: "b", RawScore: 50, Weight: 30},
	}

	overall, _, err := Aggregate(scores, 75)
	require.NoError(t, err)

	assert.InDelta(t, 70.0, overall, 1e-9)
}

func TestAggregate_ZeroWeightTotal(t *testing.T) {
	scores := []types.CategoryScore{{Name: "a", RawScore: 90, Weight: 0}}

	_, _, err := Aggregate(scores, 75)

	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestAggregate_NegativeWeight(t *testing.T) {
	scores := []types.CategoryScore{{Name: "a", RawScore: 90, Weight: -1}}

	_, _, err := Aggregate(scores, 75)

	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}
