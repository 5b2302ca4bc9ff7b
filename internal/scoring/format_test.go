package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const cleanText = "Simple resume body with plain wording and short lines"

func TestScoreFormat_CleanTextScoresFull(t *testing.T) {
	score := ScoreFormat(cleanText, nil)

	assert.Equal(t, 100.0, score.RawScore)
}

func TestScoreFormat_GraphicMarkerPenalty(t *testing.T) {
	clean := ScoreFormat(cleanText, nil)
	withImage := ScoreFormat(cleanText+"\nprofile image attached", nil)

	assert.Equal(t, clean.RawScore-10, withImage.RawScore)
}

func TestScoreFormat_PenaltyPerOccurrence(t *testing.T) {
	one := ScoreFormat("image", nil)
	two := ScoreFormat("image image", nil)

	assert.Equal(t, one.RawScore-10, two.RawScore)
}

func TestScoreFormat_TableResidue(t *testing.T) {
	withTab := ScoreFormat("name\trole\tdates", nil)
	withPipes := ScoreFormat("| name | role |", nil)

	// one penalty regardless of which table signal appears
	assert.Equal(t, 85.0, withTab.RawScore)
	assert.Equal(t, 85.0, withPipes.RawScore)
}

func TestScoreFormat_MoreArtifactsNeverScoreHigher(t *testing.T) {
	texts := []string{
		cleanText,
		cleanText + " image",
		cleanText + " image photo",
		cleanText + " image photo graphic text box",
	}

	prev := 101.0
	for _, text := range texts {
		score := ScoreFormat(text, nil).RawScore
		assert.LessOrEqual(t, score, prev, "text %q", text)
		prev = score
	}
}

func TestScoreFormat_ClampsAtZero(t *testing.T) {
	score := ScoreFormat(strings.Repeat("image ", 30), nil)

	assert.Equal(t, 0.0, score.RawScore)
}

func TestScoreFormat_EmptyText(t *testing.T) {
	score := ScoreFormat("", nil)

	assert.Equal(t, 100.0, score.RawScore)
}

func TestScoreFormat_DenseLines(t *testing.T) {
	dense := strings.Repeat("word ", 30)
	score := ScoreFormat(dense, nil)

	assert.Equal(t, 90.0, score.RawScore)
}
