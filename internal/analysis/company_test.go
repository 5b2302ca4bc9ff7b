package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-analyzer/internal/types"
)

func companyFixture() (*types.JobCategoryConfig, *types.CompanyJobRequirements) {
	atsCfg := &types.JobCategoryConfig{
		Name:             "software_engineer",
		RequiredKeywords: []string{"python", "sql"},
	}
	req := &types.CompanyJobRequirements{
		Position:               "Backend Engineer",
		RequiredKeywords:       []string{"python", "go"},
		PreferredKeywords:      []string{"kubernetes"},
		MinimumExperienceYears: 3,
		RequiredEducation:      []string{"bachelor", "computer science"},
	}
	return atsCfg, req
}

func TestAnalyzeForCompany_NilRequirements(t *testing.T) {
	a := testAnalyzer(t, nil)
	atsCfg, _ := companyFixture()

	result, err := a.AnalyzeForCompany("text", "software_engineer", atsCfg, nil, nil)

	assert.Nil(t, result)
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestAnalyzeForCompany_NilCategoryConfig(t *testing.T) {
	a := testAnalyzer(t, nil)
	_, req := companyFixture()

	_, err := a.AnalyzeForCompany("text", "software_engineer", nil, req, nil)

	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestAnalyzeForCompany_AxesOrderedByWeight(t *testing.T) {
	a := testAnalyzer(t, nil)
	atsCfg, req := companyFixture()

	result, err := a.AnalyzeForCompany("some resume text", "software_engineer", atsCfg, req, nil)
	require.NoError(t, err)

	names := make([]string, 0, len(result.CategoryScores))
	for _, cs := range result.CategoryScores {
		names = append(names, cs.Name)
	}
	assert.Equal(t, []string{
		types.CriterionKeywordRelevance,
		types.CriterionATSCompatibility,
		types.CriterionExperienceLevel,
		types.CriterionSkillsMatch,
		types.CriterionEducationBackground,
	}, names)
}

func TestAnalyzeForCompany_SkillsFallBackToKeywords(t *testing.T) {
	a := testAnalyzer(t, nil)
	atsCfg, req := companyFixture()
	require.False(t, req.HasSkillVocabulary())

	result, err := a.AnalyzeForCompany("python developer, 4 years of experience", "software_engineer", atsCfg, req, nil)
	require.NoError(t, err)

	assert.Equal(t, result.Score(types.CriterionKeywordRelevance), result.Score(types.CriterionSkillsMatch))
}

func TestAnalyzeForCompany_DistinctSkillVocabulary(t *testing.T) {
	a := testAnalyzer(t, nil)
	atsCfg, req := companyFixture()
	req.RequiredSkills = []string{"terraform", "ansible"}

	result, err := a.AnalyzeForCompany("python and go, with terraform daily", "software_engineer", atsCfg, req, nil)
	require.NoError(t, err)

	// 1 of 2 required skills: 1/2 * 70 = 35
	assert.InDelta(t, 35.0, result.Score(types.CriterionSkillsMatch), 1e-9)
	assert.NotEqual(t, result.Score(types.CriterionKeywordRelevance), result.Score(types.CriterionSkillsMatch))
}

func TestAnalyzeForCompany_UnknownCriterion(t *testing.T) {
	a := testAnalyzer(t, nil)
	atsCfg, req := companyFixture()

	_, err := a.AnalyzeForCompany("text", "software_engineer", atsCfg, req, types.CriteriaWeights{"vibes": 100})

	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestScoreExperienceLevel_MeetsFloor(t *testing.T) {
	score := scoreExperienceLevel("5 years of experience in engineering", 3)

	assert.Equal(t, 100.0, score.RawScore)
}

func TestScoreExperienceLevel_BelowFloor(t *testing.T) {
	score := scoreExperienceLevel("5 years of experience in engineering", 10)

	assert.InDelta(t, 50.0, score.RawScore, 1e-9)
}

func TestScoreExperienceLevel_NoClaimScoresZero(t *testing.T) {
	score := scoreExperienceLevel("seasoned engineer", 5)

	assert.Equal(t, 0.0, score.RawScore)
}

func TestScoreExperienceLevel_ZeroFloor(t *testing.T) {
	// a company without an experience floor still rewards stated experience
	score := scoreExperienceLevel("2 years of professional experience", 0)

	assert.Equal(t, 100.0, score.RawScore)
}

func TestScoreEducationBackground(t *testing.T) {
	score := scoreEducationBackground("Bachelor of Science in computer science", []string{"bachelor", "computer science"})
	assert.Equal(t, 100.0, score.RawScore)

	score = scoreEducationBackground("Bachelor of Arts", []string{"bachelor", "computer science"})
	assert.InDelta(t, 50.0, score.RawScore, 1e-9)
	assert.Equal(t, []string{"computer science"}, score.Missing)

	score = scoreEducationBackground("any text", nil)
	assert.Equal(t, 0.0, score.RawScore)
}
