package llm

import (
	"unicode/utf8"

	"github.com/sevigo/reviewpilot/internal/core"
)

var ratingScores = map[core.Rating]float64{
	core.RatingLow:    30,
	core.RatingMedium: 60,
	core.RatingHigh:   90,
}

func ratingScore(r core.Rating) float64 {
	if score, ok := ratingScores[r]; ok {
		return score
	}
	return ratingScores[core.RatingMedium]
}

// QualityScore averages the scores of the three ratings. Unknown ratings
// count as Medium.
func QualityScore(complexity, readability, maintainability core.Rating) float64 {
	return (ratingScore(complexity) + ratingScore(readability) + ratingScore(maintainability)) / 3
}

// ConfidenceScore is a step function of the summary length in characters.
func ConfidenceScore(summary string) float64 {
	switch n := utf8.RuneCountInString(summary); {
	case n < 100:
		return 30
	case n < 500:
		return 60
	default:
		return 90
	}
}

// EstimateTokens approximates the token count as one token per four characters.
func EstimateTokens(text string) int {
	return utf8.RuneCountInString(text) / 4
}
