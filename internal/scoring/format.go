package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-analyzer/internal/keywords"
	"github.com/jonathan/ats-analyzer/internal/types"
)

// Penalties for structural signals that trip up ATS parsers. Every signal
// only ever subtracts, keeping the score monotonic in the artifact count.
const (
	formatBaseScore         = 100.0
	graphicArtifactPenalty  = 10.0
	layoutArtifactPenalty   = 5.0
	tablePenalty            = 15.0
	specialCharPenalty      = 10.0
	irregularLinePenalty    = 10.0
	maxWordRatio            = 0.7 // below this share of word characters the text looks mangled
	denseLineWordCount      = 20
	denseLineShareThreshold = 0.3
)

// Markers whose presence suggests non-text artifacts survived extraction.
var (
	graphicMarkers = []string{"image", "img", "picture", "photo", "graphic"}
	layoutMarkers  = []string{"text box", "header", "footer"}

	pipeRow     = regexp.MustCompile(`\|.*\|`)
	nonWordRune = regexp.MustCompile(`[^\w\s]`)
)

// ScoreFormat estimates ATS parseability from structural signals left in the
// extracted text: embedded-graphic markers, table residue, excessive special
// characters, and overly dense lines. More artifacts always means a lower
// score.
func ScoreFormat(text string, _ *types.JobCategoryConfig) types.CategoryScore {
	score := formatBaseScore

	for _, marker := range graphicMarkers {
		score -= graphicArtifactPenalty * float64(keywords.Count(text, marker))
	}
	for _, marker := range layoutMarkers {
		score -= layoutArtifactPenalty * float64(keywords.Count(text, marker))
	}

	if strings.ContainsRune(text, '\t') || pipeRow.MatchString(text) {
		score -= tablePenalty
	}

	if len(text) > 0 {
		specialCount := len(nonWordRune.FindAllString(text, -1))
		if ratio := 1 - float64(specialCount)/float64(len(text)); ratio < maxWordRatio {
			score -= specialCharPenalty
		}
	}

	if denseLineShare(text) > denseLineShareThreshold {
		score -= irregularLinePenalty
	}

	return types.CategoryScore{
		Name:     types.CategoryFormatCompatibility,
		RawScore: clampScore(score),
	}
}

// denseLineShare returns the fraction of non-empty lines carrying more words
// than a single resume line plausibly holds, a proxy for multi-column
// layouts collapsed by text extraction.
func denseLineShare(text string) float64 {
	lines := strings.Split(text, "\n")
	nonEmpty, dense := 0, 0
	for _, line := range lines {
		words := len(strings.Fields(line))
		if words == 0 {
			continue
		}
		nonEmpty++
		if words > denseLineWordCount {
			dense++
		}
	}
	if nonEmpty == 0 {
		return 0
	}
	return float64(dense) / float64(nonEmpty)
}
