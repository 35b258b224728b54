package scoring

import (
	"math"

	"TokenPulse/internal/domain/models"
)

// buyThreshold separates buy from monitor on the aggregate scale.
const buyThreshold = 0.8

// Aggregate combines factor scores under the given weights. Factors
// without a weight contribute nothing; weights without a matching score
// are ignored.
func Aggregate(scores models.FactorScores, weights map[string]float64) float64 {
	var agg float64
	for factor, score := range scores {
		agg += score * weights[factor]
	}
	return agg
}

// RiskScore scales an aggregate onto the 0..10 band.
func RiskScore(aggregated float64) float64 {
	return math.Min(math.Max(aggregated*2.5, 0), 10)
}

// Recommend derives the action from the aggregate. Exactly 0.8 and
// exactly 0 both stay monitor; only a negative aggregate maps to avoid.
func Recommend(aggregated float64) models.Recommendation {
	switch {
	case aggregated > buyThreshold:
		return models.RecommendationBuy
	case aggregated >= 0:
		return models.RecommendationMonitor
	default:
		return models.RecommendationAvoid
	}
}
