package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CPIValue holds one macro observation value. Upstream feeds deliver it as
// either a JSON number or a numeric string; anything unparseable yields an
// invalid value rather than a decode error, so one bad observation cannot
// poison a whole snapshot.
type CPIValue struct {
	value float64
	valid bool
}

// NewCPIValue builds a valid observation value.
func NewCPIValue(f float64) CPIValue {
	return CPIValue{value: f, valid: true}
}

// Float64 returns the parsed value and whether it is usable.
func (v CPIValue) Float64() (float64, bool) {
	return v.value, v.valid
}

func (v *CPIValue) UnmarshalJSON(b []byte) error {
	v.value, v.valid = 0, false

	if string(b) == "null" {
		return nil
	}

	var num float64
	if err := json.Unmarshal(b, &num); err == nil {
		v.value, v.valid = num, true
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		v.value, v.valid = f, true
	}
	return nil
}

func (v CPIValue) MarshalJSON() ([]byte, error) {
	if !v.valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}

// CPIObservation is one point of the macro CPI series.
type CPIObservation struct {
	Date  string   `json:"date"`
	Value CPIValue `json:"value"`
}

// MacroSnapshot is the CPI observation series, oldest first. A nil snapshot
// means the upstream was unavailable.
type MacroSnapshot []CPIObservation

// LatestValue returns the most recent usable observation value.
func (m MacroSnapshot) LatestValue() (float64, bool) {
	if len(m) == 0 {
		return 0, false
	}
	return m[len(m)-1].Value.Float64()
}

// SentimentSnapshot carries the market fear/greed reading. A nil snapshot
// means the upstream was unavailable.
type SentimentSnapshot struct {
	FearGreed *float64 `json:"fear_greed,omitempty"`
}

// FearGreedIndex returns the index, defaulting to the neutral 50 when the
// field is missing.
func (s *SentimentSnapshot) FearGreedIndex() float64 {
	if s == nil || s.FearGreed == nil {
		return 50
	}
	return *s.FearGreed
}

// Filing is one standardized regulatory disclosure.
type Filing struct {
	Description string `json:"description"`
	Form        string `json:"form"`
}

// FilingsByFiler groups filings under the entity that submitted them.
type FilingsByFiler map[string][]Filing

// NewsArticle is one regulatory news item.
type NewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RegulatoryCorpus joins the two independently fetched halves of the
// regulatory text corpus. Either half may be absent.
type RegulatoryCorpus struct {
	Filings FilingsByFiler
	News    []NewsArticle
}

// Empty reports whether both halves are absent or empty.
func (c RegulatoryCorpus) Empty() bool {
	return len(c.Filings) == 0 && len(c.News) == 0
}

// PricePoint is one historical price sample. On the wire it is the
// [timestamp_ms, price] pair used by CoinGecko-compatible APIs.
type PricePoint struct {
	Timestamp int64 // unix milliseconds
	Price     float64
}

func (p PricePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{float64(p.Timestamp), p.Price})
}

func (p *PricePoint) UnmarshalJSON(b []byte) error {
	var pair []float64
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("price point: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("price point: want [timestamp, price], got %d elements", len(pair))
	}
	p.Timestamp = int64(pair[0])
	p.Price = pair[1]
	return nil
}

// PriceSeries is a chronologically ordered price history. Empty means
// history was unavailable.
type PriceSeries []PricePoint

// Tail returns the last n points, or the whole series if shorter.
func (s PriceSeries) Tail(n int) PriceSeries {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// Values extracts the raw prices.
func (s PriceSeries) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Price
	}
	return out
}
