package models

import (
	"encoding/json"
	"testing"
)

func TestCPIValueAcceptsStringAndNumber(t *testing.T) {
	cases := []struct {
		name  string
		json  string
		want  float64
		valid bool
	}{
		{"numeric string", `{"date":"2024-01-01","value":"3.2"}`, 3.2, true},
		{"number", `{"date":"2024-01-01","value":3.2}`, 3.2, true},
		{"padded string", `{"date":"2024-01-01","value":" 2.95 "}`, 2.95, true},
		{"null", `{"date":"2024-01-01","value":null}`, 0, false},
		{"garbage string", `{"date":"2024-01-01","value":"n/a"}`, 0, false},
		{"wrong type", `{"date":"2024-01-01","value":{"v":1}}`, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var obs CPIObservation
			if err := json.Unmarshal([]byte(tc.json), &obs); err != nil {
				t.Fatalf("unmarshal should absorb malformed values, got %v", err)
			}
			got, ok := obs.Value.Float64()
			if ok != tc.valid {
				t.Fatalf("valid = %v, want %v", ok, tc.valid)
			}
			if ok && got != tc.want {
				t.Errorf("value = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMacroSnapshotLatestValue(t *testing.T) {
	snap := MacroSnapshot{
		{Date: "2024-01-01", Value: NewCPIValue(3.0)},
		{Date: "2024-02-01", Value: NewCPIValue(3.4)},
	}

	got, ok := snap.LatestValue()
	if !ok || got != 3.4 {
		t.Errorf("LatestValue = %v, %v; want 3.4, true", got, ok)
	}

	if _, ok := (MacroSnapshot)(nil).LatestValue(); ok {
		t.Error("nil snapshot should have no latest value")
	}

	bad := MacroSnapshot{{Date: "2024-03-01"}}
	if _, ok := bad.LatestValue(); ok {
		t.Error("invalid latest observation should not be usable")
	}
}

func TestPricePointPairCodec(t *testing.T) {
	var series PriceSeries
	raw := `[[1700000000000, 42000.5], [1700000086400, 43100.0]]`
	if err := json.Unmarshal([]byte(raw), &series); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(series) != 2 {
		t.Fatalf("len = %d, want 2", len(series))
	}
	if series[0].Timestamp != 1700000000000 || series[0].Price != 42000.5 {
		t.Errorf("first point = %+v", series[0])
	}

	// Round-trips through the queue payload.
	out, err := json.Marshal(series)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back PriceSeries
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal round-trip: %v", err)
	}
	if back[1] != series[1] {
		t.Errorf("round-trip mismatch: %+v vs %+v", back[1], series[1])
	}
}

func TestPricePointRejectsMalformedPair(t *testing.T) {
	var p PricePoint
	if err := json.Unmarshal([]byte(`[1700000000000]`), &p); err == nil {
		t.Error("expected error for 1-element pair")
	}
	if err := json.Unmarshal([]byte(`{"t":1}`), &p); err == nil {
		t.Error("expected error for object")
	}
}

func TestPriceSeriesTail(t *testing.T) {
	series := make(PriceSeries, 5)
	for i := range series {
		series[i] = PricePoint{Timestamp: int64(i), Price: float64(i)}
	}

	tail := series.Tail(3)
	if len(tail) != 3 || tail[0].Price != 2 {
		t.Errorf("Tail(3) = %v", tail)
	}
	if got := series.Tail(10); len(got) != 5 {
		t.Errorf("Tail larger than series should return all, got %d", len(got))
	}
}

func TestSentimentFearGreedIndex(t *testing.T) {
	var nilSnap *SentimentSnapshot
	if got := nilSnap.FearGreedIndex(); got != 50 {
		t.Errorf("nil snapshot index = %v, want 50", got)
	}

	if got := (&SentimentSnapshot{}).FearGreedIndex(); got != 50 {
		t.Errorf("missing field index = %v, want 50", got)
	}

	v := 75.0
	if got := (&SentimentSnapshot{FearGreed: &v}).FearGreedIndex(); got != 75 {
		t.Errorf("index = %v, want 75", got)
	}
}

func TestRegulatoryCorpusEmpty(t *testing.T) {
	if !(RegulatoryCorpus{}).Empty() {
		t.Error("zero corpus should be empty")
	}
	if (RegulatoryCorpus{News: []NewsArticle{{Title: "x"}}}).Empty() {
		t.Error("corpus with news should not be empty")
	}
	if (RegulatoryCorpus{Filings: FilingsByFiler{"A": nil}}).Empty() {
		t.Error("corpus with a filer entry should not be empty")
	}
}
