package scoring

import (
	"testing"

	"TokenPulse/internal/domain/models"
)

type faultCounter struct{ faults map[string]int }

func (c *faultCounter) RecordScorerFault(factor string) {
	if c.faults == nil {
		c.faults = map[string]int{}
	}
	c.faults[factor]++
}

func TestComputeAllWithAbsentInputs(t *testing.T) {
	engine := NewEngine(fixedRand{0.75}, nil, nil)
	scores := engine.ComputeAll(Inputs{})

	if len(scores) != 14 {
		t.Fatalf("got %d factor scores, want 14", len(scores))
	}
	for _, f := range []string{FactorMacro, FactorSentiment, FactorRegulatory} {
		if scores[f] != 0 {
			t.Errorf("%s = %v, want 0 for absent inputs", f, scores[f])
		}
	}
	for _, f := range thematicFactors {
		if !approxEqual(scores[f], 1) {
			t.Errorf("%s = %v, want 1 for roll 0.75", f, scores[f])
		}
	}
}

func TestComputeAllScoresRealFactors(t *testing.T) {
	fearGreed := 100.0
	in := Inputs{
		Macro:     macroSeries(models.NewCPIValue(6)),
		Sentiment: &models.SentimentSnapshot{FearGreed: &fearGreed},
		Regulatory: models.RegulatoryCorpus{
			News: []models.NewsArticle{{Title: "favorable adoption"}},
		},
	}
	engine := NewEngine(fixedRand{0.5}, nil, nil)
	scores := engine.ComputeAll(in)

	if scores[FactorMacro] != -2 {
		t.Errorf("macro = %v, want -2", scores[FactorMacro])
	}
	if !approxEqual(scores[FactorSentiment], 2) {
		t.Errorf("sentiment = %v, want 2", scores[FactorSentiment])
	}
	// (2-0)/3 doubled.
	if !approxEqual(scores[FactorRegulatory], 4.0/3.0) {
		t.Errorf("regulatory = %v, want %v", scores[FactorRegulatory], 4.0/3.0)
	}
}

func TestSafeIsolatesPanics(t *testing.T) {
	faults := &faultCounter{}
	engine := NewEngine(fixedRand{0.5}, nil, faults)

	got := engine.safe(FactorMacro, func() float64 { panic("scorer exploded") })
	if got != 0 {
		t.Fatalf("faulted scorer returned %v, want 0", got)
	}
	if faults.faults[FactorMacro] != 1 {
		t.Fatalf("fault count = %d, want 1", faults.faults[FactorMacro])
	}
}

func TestNewEngineDefaultsRand(t *testing.T) {
	engine := NewEngine(nil, nil, nil)
	scores := engine.ComputeAll(Inputs{})
	for _, f := range thematicFactors {
		if s := scores[f]; s < -2 || s >= 2 {
			t.Fatalf("%s out of range: %v", f, s)
		}
	}
}
