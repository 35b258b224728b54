package scoring

import (
	"testing"

	"TokenPulse/internal/domain/models"
)

func TestAggregateEmptyScores(t *testing.T) {
	if got := Aggregate(models.FactorScores{}, DefaultWeights()); got != 0 {
		t.Fatalf("Aggregate(empty) = %v, want 0", got)
	}
}

func TestAggregateWeightedSum(t *testing.T) {
	scores := models.FactorScores{FactorMacro: 2, FactorSentiment: -1}
	weights := map[string]float64{FactorMacro: 0.5, FactorSentiment: 0.5}
	if got := Aggregate(scores, weights); !approxEqual(got, 0.5) {
		t.Fatalf("Aggregate = %v, want 0.5", got)
	}
}

func TestAggregateMissingWeightContributesNothing(t *testing.T) {
	scores := models.FactorScores{FactorMacro: 2, "mystery": 100}
	weights := map[string]float64{FactorMacro: 1}
	if got := Aggregate(scores, weights); !approxEqual(got, 2) {
		t.Fatalf("Aggregate = %v, want 2", got)
	}
}

func TestAggregateLinearInScores(t *testing.T) {
	weights, err := Normalize(DefaultWeights())
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	scores := models.FactorScores{FactorMacro: 1.5, FactorRegulatory: -0.5, FactorAI: 0.25}
	doubled := models.FactorScores{}
	for f, s := range scores {
		doubled[f] = 2 * s
	}
	if got, want := Aggregate(doubled, weights), 2*Aggregate(scores, weights); !approxEqual(got, want) {
		t.Fatalf("Aggregate(2*scores) = %v, want %v", got, want)
	}
}

func TestRiskScoreClamps(t *testing.T) {
	cases := []struct{ agg, want float64 }{
		{10, 10},
		{-5, 0},
		{2, 5},
		{4, 10},
		{0.4, 1},
	}
	for _, tc := range cases {
		if got := RiskScore(tc.agg); !approxEqual(got, tc.want) {
			t.Errorf("RiskScore(%v) = %v, want %v", tc.agg, got, tc.want)
		}
	}
}

func TestRecommendBoundaries(t *testing.T) {
	cases := []struct {
		agg  float64
		want models.Recommendation
	}{
		{0.8, models.RecommendationMonitor},
		{0.8000001, models.RecommendationBuy},
		{0, models.RecommendationMonitor},
		{-0.1, models.RecommendationAvoid},
		{1.2, models.RecommendationBuy},
		{0.3, models.RecommendationMonitor},
	}
	for _, tc := range cases {
		if got := Recommend(tc.agg); got != tc.want {
			t.Errorf("Recommend(%v) = %q, want %q", tc.agg, got, tc.want)
		}
	}
}
