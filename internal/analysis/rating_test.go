package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-analyzer/internal/types"
)

func TestRatingFor_Bands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, types.RatingExcellent},
		{85, types.RatingExcellent},
		{84.99, types.RatingGood},
		{70, types.RatingGood},
		{69.99, types.RatingAverage},
		{55, types.RatingAverage},
		{54.99, types.RatingPoor},
		{40, types.RatingPoor},
		{39.99, types.RatingVeryPoor},
		{0, types.RatingVeryPoor},
	}
	for _, tt := range tests {
		rating, detail := ratingFor(tt.score)
		assert.Equal(t, tt.want, rating, "score %.2f", tt.score)
		assert.NotEmpty(t, detail)
	}
}
