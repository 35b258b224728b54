// Package scoring turns fetched market context into per-factor scores and
// aggregates them into a risk score and recommendation.
package scoring

import (
	"TokenPulse/internal/domain/models"
	"TokenPulse/pkg/logger"
)

// FaultRecorder counts per-factor scorer faults for diagnostics.
type FaultRecorder interface {
	RecordScorerFault(factor string)
}

// Inputs carries the fetched upstream data the scorers consume. Any part
// may be absent; the matching scorer goes neutral.
type Inputs struct {
	Macro      models.MacroSnapshot
	Sentiment  *models.SentimentSnapshot
	Regulatory models.RegulatoryCorpus
}

// Engine runs every factor scorer with per-factor fault isolation: a panic
// inside one scorer zeroes that factor and the rest of the pipeline
// continues.
type Engine struct {
	rng    Rand
	log    *logger.Logger
	faults FaultRecorder
}

// NewEngine builds an engine. A nil rng falls back to SystemRand; log and
// faults may be nil, which disables the respective diagnostics.
func NewEngine(rng Rand, log *logger.Logger, faults FaultRecorder) *Engine {
	if rng == nil {
		rng = SystemRand{}
	}
	return &Engine{rng: rng, log: log, faults: faults}
}

// ComputeAll scores every factor from the given inputs.
func (e *Engine) ComputeAll(in Inputs) models.FactorScores {
	scores := models.FactorScores{
		FactorMacro:      e.safe(FactorMacro, func() float64 { return MacroScore(in.Macro) }),
		FactorSentiment:  e.safe(FactorSentiment, func() float64 { return SentimentScore(in.Sentiment) }),
		FactorRegulatory: e.safe(FactorRegulatory, func() float64 { return RegulatoryScore(in.Regulatory) }),
	}
	for _, factor := range thematicFactors {
		scores[factor] = e.safe(factor, func() float64 { return ThematicScore(e.rng) })
	}
	return scores
}

func (e *Engine) safe(factor string, score func() float64) (result float64) {
	defer func() {
		if r := recover(); r != nil {
			result = 0
			if e.log != nil {
				e.log.Warn("factor scorer fault",
					logger.String("factor", factor),
					logger.Any("panic", r),
				)
			}
			if e.faults != nil {
				e.faults.RecordScorerFault(factor)
			}
		}
	}()
	return score()
}
