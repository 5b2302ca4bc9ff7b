package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-analyzer/internal/types"
)

// minReadabilityTokens is the guard threshold below which text is too short
// for the grade formula to mean anything; such text scores at most 50.
const (
	minReadabilityTokens  = 50
	shortTextReadingCap   = 50.0
	sentenceFallbackCount = 1
)

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// ScoreReadability maps a Flesch-Kincaid-style grade level onto [0,100].
// Text reading at a professional-resume grade (8-12) scores highest; the
// score falls off symmetrically as prose gets too simple or too dense.
func ScoreReadability(text string, _ *types.JobCategoryConfig) types.CategoryScore {
	words := strings.Fields(text)

	score := gradeBandScore(fleschKincaidGrade(text, words))
	if len(words) < minReadabilityTokens && score > shortTextReadingCap {
		score = shortTextReadingCap
	}

	return types.CategoryScore{
		Name:     types.CategoryReadability,
		RawScore: clampScore(score),
	}
}

// fleschKincaidGrade computes 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59.
func fleschKincaidGrade(text string, words []string) float64 {
	if len(words) == 0 {
		return 0
	}

	sentences := 0
	for _, s := range sentenceBoundary.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	if sentences == 0 {
		sentences = sentenceFallbackCount
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordCount := float64(len(words))
	return 0.39*(wordCount/float64(sentences)) + 11.8*(float64(syllables)/wordCount) - 15.59
}

// gradeBandScore is the fixed grade-to-score mapping.
func gradeBandScore(grade float64) float64 {
	switch {
	case grade >= 8 && grade <= 12:
		return 100
	case (grade >= 6 && grade < 8) || (grade > 12 && grade <= 14):
		return 85
	case (grade >= 4 && grade < 6) || (grade > 14 && grade <= 16):
		return 70
	case grade > 16 && grade <= 18:
		return 55
	default:
		return 40
	}
}

// countSyllables estimates syllables as vowel groups, with the usual silent
// trailing-e adjustment and a floor of one.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}
