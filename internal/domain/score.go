package domain

import "strconv"

const (
	MinScore  = 1.0
	MaxScore  = 9.0
	ScoreStep = 0.5
)

// FormatScore renders a score with exactly one decimal place.
func FormatScore(s float64) string {
	return strconv.FormatFloat(s, 'f', 1, 64)
}

// ScoreScale returns every point of the half-point band scale in ascending order.
func ScoreScale() []float64 {
	n := int((MaxScore-MinScore)/ScoreStep) + 1
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, MinScore+float64(i)*ScoreStep)
	}
	return out
}
