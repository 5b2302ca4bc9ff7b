package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch_CaseInsensitive(t *testing.T) {
	matched, missing := Match("Experienced PYTHON developer with Docker", []string{"python", "docker", "kubernetes"})

	assert.Equal(t, []string{"python", "docker"}, matched)
	assert.Equal(t, []string{"kubernetes"}, missing)
}

func TestMatch_WholeWordBoundaries(t *testing.T) {
	// "javascript" contains "java" but must not count as a java match
	matched, missing := Match("expert in javascript frameworks", []string{"java"})

	assert.Empty(t, matched)
	assert.Equal(t, []string{"java"}, missing)
}

func TestMatch_PunctuationIsBoundary(t *testing.T) {
	matched, _ := Match("Skills: python, sql.", []string{"python", "sql"})

	assert.Equal(t, []string{"python", "sql"}, matched)
}

func TestMatch_MultiWordPhrase(t *testing.T) {
	text := "Built machine\nlearning pipelines at scale"

	// line break between the words still counts as a contiguous phrase
	matched, _ := Match(text, []string{"machine learning"})
	assert.Equal(t, []string{"machine learning"}, matched)

	// words present but not adjacent must not match
	_, missing := Match("machine operators and deep learning", []string{"machine learning"})
	assert.Equal(t, []string{"machine learning"}, missing)
}

func TestMatch_DeduplicatesVocabulary(t *testing.T) {
	matched, missing := Match("python everywhere", []string{"Python", "python", "PYTHON", "go"})

	assert.Equal(t, []string{"python"}, matched)
	assert.Equal(t, []string{"go"}, missing)
	assert.Len(t, matched, 1)
}

func TestMatch_PreservesVocabularyOrder(t *testing.T) {
	matched, missing := Match("sql and python and git", []string{"git", "java", "sql", "python", "rust"})

	assert.Equal(t, []string{"git", "sql", "python"}, matched)
	assert.Equal(t, []string{"java", "rust"}, missing)
}

func TestMatch_EmptyVocabulary(t *testing.T) {
	matched, missing := Match("any text at all", nil)

	assert.Empty(t, matched)
	assert.Empty(t, missing)
}

func TestCount_Occurrences(t *testing.T) {
	assert.Equal(t, 3, Count("python python and more Python", "python"))
	assert.Equal(t, 0, Count("pythonic code only", "python"))
	assert.Equal(t, 0, Count("anything", ""))
}

func TestCount_Phrase(t *testing.T) {
	text := "machine learning today, machine learning tomorrow"
	assert.Equal(t, 2, Count(text, "machine learning"))
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "hello world", Normalize("  Hello\n\tWORLD  "))
	assert.Equal(t, "", Normalize("   \n\t "))
}
