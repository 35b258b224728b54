package scoring

import (
	"testing"

	"TokenPulse/internal/domain/models"
)

func macroSeries(values ...models.CPIValue) models.MacroSnapshot {
	snap := make(models.MacroSnapshot, len(values))
	for i, v := range values {
		snap[i] = models.CPIObservation{Date: "2025-01-01", Value: v}
	}
	return snap
}

func TestMacroScoreThresholds(t *testing.T) {
	cases := []struct {
		name string
		cpi  float64
		want float64
	}{
		{"high inflation", 6.1, -2},
		{"just above five", 5.01, -2},
		{"exactly five", 5, 0},
		{"mid band", 3.2, 0},
		{"exactly two", 2, 0},
		{"low inflation", 1.4, 2},
	}
	for _, tc := range cases {
		snap := macroSeries(models.NewCPIValue(tc.cpi))
		if got := MacroScore(snap); got != tc.want {
			t.Errorf("%s: MacroScore(%v) = %v, want %v", tc.name, tc.cpi, got, tc.want)
		}
	}
}

func TestMacroScoreUsesLatestObservation(t *testing.T) {
	snap := macroSeries(models.NewCPIValue(6), models.NewCPIValue(1))
	if got := MacroScore(snap); got != 2 {
		t.Fatalf("MacroScore = %v, want 2 (latest value wins)", got)
	}
}

func TestMacroScoreAbsent(t *testing.T) {
	if got := MacroScore(nil); got != 0 {
		t.Fatalf("MacroScore(nil) = %v, want 0", got)
	}
	var unusable models.CPIValue
	if got := MacroScore(macroSeries(unusable)); got != 0 {
		t.Fatalf("MacroScore(invalid latest) = %v, want 0", got)
	}
}
