package scoring

import (
	"testing"

	"TokenPulse/internal/domain/models"
)

func TestSentimentScoreLinearMap(t *testing.T) {
	cases := []struct {
		fearGreed float64
		want      float64
	}{
		{0, -2},
		{25, -1},
		{50, 0},
		{75, 1},
		{100, 2},
	}
	for _, tc := range cases {
		v := tc.fearGreed
		snap := &models.SentimentSnapshot{FearGreed: &v}
		if got := SentimentScore(snap); !approxEqual(got, tc.want) {
			t.Errorf("SentimentScore(%v) = %v, want %v", tc.fearGreed, got, tc.want)
		}
	}
}

func TestSentimentScoreAbsent(t *testing.T) {
	if got := SentimentScore(nil); got != 0 {
		t.Fatalf("SentimentScore(nil) = %v, want 0", got)
	}
	// Present snapshot without the index reads as neutral 50.
	if got := SentimentScore(&models.SentimentSnapshot{}); got != 0 {
		t.Fatalf("SentimentScore(no index) = %v, want 0", got)
	}
}
