// Package forecast produces the price target: a weighted moving average
// over recent history adjusted by macro and sentiment multipliers, run as
// a queued task with a bounded wait and a configured fallback price.
package forecast

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"TokenPulse/internal/domain/models"
	"TokenPulse/internal/scoring"
)

// predictionWindow is how many of the most recent observations feed the
// moving average.
const predictionWindow = 30

var (
	// ErrInsufficientData rejects an empty price history.
	ErrInsufficientData = errors.New("insufficient price history")

	// ErrInvalidPrediction rejects a non-positive prediction.
	ErrInvalidPrediction = errors.New("non-positive prediction")
)

// Engine computes the raw prediction. It is pure; queueing and fallback
// live in the wrappers around it.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// Predict averages the most recent observations with weights ramping from
// 0.5 (oldest) to 1.5 (newest), then applies the macro and sentiment
// multipliers. The horizon field selects the historical range upstream and
// is deliberately inert here.
func (e *Engine) Predict(req models.ForecastRequest) (float64, error) {
	if len(req.Prices) == 0 {
		return 0, ErrInsufficientData
	}

	window := req.Prices.Tail(predictionWindow)
	base := stat.Mean(window.Values(), rampWeights(len(window)))
	if base <= 0 {
		return 0, ErrInvalidPrediction
	}

	macroFactor := 1 + scoring.MacroScore(req.Macro)/20
	sentimentFactor := 1 + scoring.SentimentScore(req.Sentiment)/10
	return base * macroFactor * sentimentFactor, nil
}

// rampWeights ramps linearly across n points. stat.Mean divides by the
// weight sum, so the ramp needs no explicit normalization. Span needs at
// least two points; a lone observation keeps the ramp's starting weight.
func rampWeights(n int) []float64 {
	weights := make([]float64, n)
	if n == 1 {
		weights[0] = 0.5
		return weights
	}
	floats.Span(weights, 0.5, 1.5)
	return weights
}
