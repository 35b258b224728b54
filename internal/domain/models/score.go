package models

import "time"

// Recommendation is the coarse action derived from the aggregate score.
type Recommendation string

const (
	RecommendationBuy     Recommendation = "buy"
	RecommendationMonitor Recommendation = "monitor"
	RecommendationAvoid   Recommendation = "avoid"
)

// FactorScores maps factor names to their raw scores in [-2, 2].
type FactorScores map[string]float64

// ScoreEvent is published to the event stream after every completed
// scoring run.
type ScoreEvent struct {
	TokenID        string         `json:"token_id"`
	Symbol         string         `json:"symbol"`
	Horizon        string         `json:"horizon"`
	RiskScore      float64        `json:"risk_score"`
	Recommendation Recommendation `json:"recommendation"`
	PriceTarget    float64        `json:"price_target"`
	Timestamp      time.Time      `json:"timestamp"`
}
