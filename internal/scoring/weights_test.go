package scoring

import (
	"errors"
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalizeSumsToOne(t *testing.T) {
	normalized, err := Normalize(DefaultWeights())
	if err != nil {
		t.Fatalf("normalize default weights: %v", err)
	}
	var sum float64
	for _, w := range normalized {
		sum += w
	}
	if !approxEqual(sum, 1) {
		t.Fatalf("normalized sum = %v, want 1", sum)
	}
	// 0.35 of a 1.80 total.
	if got := normalized[FactorMacro]; !approxEqual(got, 0.35/1.80) {
		t.Fatalf("macro weight = %v, want %v", got, 0.35/1.80)
	}
}

func TestNormalizeProportions(t *testing.T) {
	normalized, err := Normalize(map[string]float64{FactorMacro: 1, FactorSentiment: 3})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !approxEqual(normalized[FactorMacro], 0.25) || !approxEqual(normalized[FactorSentiment], 0.75) {
		t.Fatalf("unexpected proportions: %v", normalized)
	}
}

func TestNormalizeZeroSum(t *testing.T) {
	for _, weights := range []map[string]float64{
		{},
		{FactorMacro: 0, FactorSentiment: 0},
	} {
		if _, err := Normalize(weights); !errors.Is(err, ErrZeroWeightSum) {
			t.Fatalf("weights %v: err = %v, want ErrZeroWeightSum", weights, err)
		}
	}
}

func TestNormalizeKeepsUnknownKeys(t *testing.T) {
	normalized, err := Normalize(map[string]float64{"mystery": 2, FactorMacro: 2})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !approxEqual(normalized["mystery"], 0.5) {
		t.Fatalf("unknown key dropped or rescaled: %v", normalized)
	}
}

func TestDefaultWeightsCoverAllFactors(t *testing.T) {
	weights := DefaultWeights()
	if len(weights) != 14 {
		t.Fatalf("default weights have %d entries, want 14", len(weights))
	}
	named := []string{FactorMacro, FactorSentiment, FactorRegulatory}
	named = append(named, thematicFactors...)
	for _, f := range named {
		if _, ok := weights[f]; !ok {
			t.Fatalf("factor %q has no default weight", f)
		}
	}
}
