package models

// Request and response shapes for the scoring HTTP endpoint. Defined in
// domain for consistency and reuse.

// TokenDescriptor identifies the asset to score. Callers may send extra
// descriptor fields; they are accepted and ignored.
type TokenDescriptor struct {
	ID     string `json:"id" validate:"required"`
	Symbol string `json:"symbol" validate:"required"`
}

// ScoreRequest is the body of POST /score-token. Horizon defaults to short
// when omitted. Weights are optional per-factor overrides; negative weights
// are rejected at the boundary so normalization only ever sees non-negative
// maps.
type ScoreRequest struct {
	Data    TokenDescriptor    `json:"data" validate:"required"`
	Horizon string             `json:"horizon" default:"short" validate:"oneof=short long"`
	Weights map[string]float64 `json:"weights,omitempty" validate:"omitempty,dive,gte=0"`
}

// ScoreResponse is the flat result body.
type ScoreResponse struct {
	RiskScore      float64        `json:"risk_score"`
	Recommendation Recommendation `json:"recommendation"`
	PriceTarget    float64        `json:"price_target"`
	FactorScores   FactorScores   `json:"factor_scores"`
}
